package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dzjyyds666/acon/parse"
	"github.com/spf13/cobra"
)

var errFalsy = errors.New("expression result is false or nil")

type EvalParams struct {
	Input      string `json:"input"`       // 输入文件路径
	From       string `json:"from"`        // 输入格式
	ExitStatus bool   `json:"exit_status"` // 结果为 false/nil 时返回错误
}

var evalParams = &EvalParams{}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate an expression against a document",
	Long: "Evaluate an expr-lang expression against a document. Top-level keys are variables " +
		`and lookup("a.0.b") resolves a dot path. Strings print as is, other results as json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(evalParams, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalParams.Input, "input", "i", "", "input file path, stdin when empty")
	evalCmd.Flags().StringVarP(&evalParams.From, "from", "f", "", "input format (acon, json, yaml)")
	evalCmd.Flags().BoolVarP(&evalParams.ExitStatus, "exit-status", "e", false, "fail when the result is false or nil")
}

func runEval(p *EvalParams, source string, stdin io.Reader, stdout io.Writer) error {
	root, err := loadDocument(p.Input, p.From, stdin)
	if err != nil {
		return err
	}

	out, err := parse.Query(root, source)
	if err != nil {
		return err
	}

	if s, ok := out.(string); ok {
		fmt.Fprintln(stdout, s)
	} else {
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}

	if p.ExitStatus && (out == nil || out == false) {
		return errFalsy
	}
	return nil
}
