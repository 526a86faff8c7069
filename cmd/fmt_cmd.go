package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/dzjyyds666/acon/pkg"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var errNotFormatted = errors.New("input is not canonically formatted")

type FmtParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Indent string `json:"indent"` // 缩进
	Check  bool   `json:"check"`  // 只检查, 不输出
	Diff   bool   `json:"diff"`   // 输出差异
}

var fmtParams = &FmtParams{}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Reprint an acon document in canonical form",
	Long: "Reprint an acon document with sorted keys and one indent per nesting level. " +
		"With --check the command fails when the input differs from its canonical form; " +
		"with --diff it prints the difference instead of the document.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt(fmtParams, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtParams.Input, "input", "i", "", "input file path, stdin when empty")
	fmtCmd.Flags().StringVarP(&fmtParams.Output, "output", "o", "", "output path, stdout when empty")
	fmtCmd.Flags().StringVar(&fmtParams.Indent, "indent", acon.DefaultIndent, "indent for each nesting level")
	fmtCmd.Flags().BoolVar(&fmtParams.Check, "check", false, "fail if the input is not canonical")
	fmtCmd.Flags().BoolVar(&fmtParams.Diff, "diff", false, "print a diff against the canonical form")
}

func runFmt(p *FmtParams, stdin io.Reader, stdout io.Writer) error {
	data, err := pkg.ReadInput(p.Input, stdin)
	if err != nil {
		return err
	}

	root, err := acon.ParseBytes(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := (&acon.Printer{Indent: p.Indent}).Fprint(&buf, root); err != nil {
		return err
	}
	out := buf.Bytes()
	changed := !bytes.Equal(data, out)
	slog.Debug("formatted", slog.String("input", displayPath(p.Input)), slog.Bool("changed", changed))

	if p.Diff {
		writeDiff(stdout, string(data), string(out))
	} else if !p.Check {
		if err := pkg.WriteOutput(p.Output, stdout, out); err != nil {
			return err
		}
	}

	if p.Check && changed {
		return fmt.Errorf("%s: %w", displayPath(p.Input), errNotFormatted)
	}
	return nil
}

// writeDiff prints a line diff of before and after, "-" for removed and "+"
// for added lines.
func writeDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				removed.Fprintln(w, "-"+line)
			case diffmatchpatch.DiffInsert:
				added.Fprintln(w, "+"+line)
			default:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
