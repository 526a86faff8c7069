package main

import "github.com/dzjyyds666/acon/cmd"

func main() {
	cmd.Execute()
}
