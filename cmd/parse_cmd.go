package cmd

import (
	"io"

	"github.com/dzjyyds666/acon/parse"
	"github.com/dzjyyds666/acon/pkg"
	"github.com/spf13/cobra"
)

type ParseParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	From   string `json:"from"`   // 输入格式
	To     string `json:"to"`     // 输出格式
}

var parseParams = &ParseParams{}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a document and convert it to json, yaml or acon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(parseParams, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseParams.Input, "input", "i", "", "input file path, stdin when empty")
	parseCmd.Flags().StringVarP(&parseParams.Output, "output", "o", "", "output path, stdout when empty")
	parseCmd.Flags().StringVarP(&parseParams.From, "from", "f", "", "input format (acon, json, yaml), guessed from the extension when empty")
	parseCmd.Flags().StringVarP(&parseParams.To, "to", "t", "json", "output format (acon, json, yaml)")
}

func runParse(p *ParseParams, stdin io.Reader, stdout io.Writer) error {
	to, err := parse.ParseFormat(p.To)
	if err != nil {
		return err
	}

	root, err := loadDocument(p.Input, p.From, stdin)
	if err != nil {
		return err
	}

	out, err := parse.Encode(root, to)
	if err != nil {
		return err
	}
	return pkg.WriteOutput(p.Output, stdout, out)
}
