package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dzjyyds666/acon/parse"
	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Input string `json:"input"` // 输入文件路径
	From  string `json:"from"`  // 输入格式
	JSON  bool   `json:"json"`  // 以 json 输出
}

var getParams = &GetParams{}

var getCmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Print the value at a dot separated path",
	Long: "Print the value at a dot separated path such as server.hosts.0. Strings are printed as is, " +
		"tables and arrays as acon blocks. An empty segment selects an unnamed block.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(getParams, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path, stdin when empty")
	getCmd.Flags().StringVarP(&getParams.From, "from", "f", "", "input format (acon, json, yaml)")
	getCmd.Flags().BoolVar(&getParams.JSON, "json", false, "print the value as json")
}

func runGet(p *GetParams, path string, stdin io.Reader, stdout io.Writer) error {
	root, err := loadDocument(p.Input, p.From, stdin)
	if err != nil {
		return err
	}

	n, ok := acon.Path(root, path)
	if !ok {
		return fmt.Errorf("path %q not found", path)
	}

	if p.JSON {
		out, err := parse.ToJSON(n)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	switch v := n.(type) {
	case *acon.String:
		_, err = fmt.Fprintln(stdout, v.V)
		return err
	case *acon.Table:
		return acon.Print(stdout, v)
	default:
		// Arrays print as a block named after the last path segment.
		wrapper := acon.NewTable()
		wrapper.Set(path[strings.LastIndex(path, ".")+1:], n)
		return acon.Print(stdout, wrapper)
	}
}
