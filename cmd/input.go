package cmd

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dzjyyds666/acon/parse"
	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/dzjyyds666/acon/pkg"
)

// inputFormat picks the format from the flag, falling back to the file
// extension and then to ACON.
func inputFormat(flag, path string) (parse.Format, error) {
	if flag != "" {
		return parse.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parse.FormatJSON, nil
	case ".yaml", ".yml":
		return parse.FormatYAML, nil
	default:
		return parse.FormatAcon, nil
	}
}

// loadDocument reads and decodes the input named by path (stdin for "" or
// "-").
func loadDocument(path, format string, stdin io.Reader) (*acon.Table, error) {
	f, err := inputFormat(format, path)
	if err != nil {
		return nil, err
	}

	data, err := pkg.ReadInput(path, stdin)
	if err != nil {
		return nil, err
	}

	root, err := parse.Decode(data, f)
	if err != nil {
		return nil, err
	}

	slog.Debug("document loaded",
		slog.String("input", displayPath(path)),
		slog.String("format", string(f)),
		slog.Int("bytes", len(data)),
		slog.Int("keys", root.Len()),
	)
	return root, nil
}

func displayPath(path string) string {
	if pkg.IsStdio(path) {
		return "<stdin>"
	}
	return path
}
