package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "acon v0.1 -- HEAD"

type RootParams struct {
	LogLevel    string `json:"log_level"`    // debug, info, warn, error
	LogFormat   string `json:"log_format"`   // text, json
	Color       string `json:"color"`        // auto, always, never
	Profile     string `json:"profile"`      // cpu, mem, ...
	ProfilePath string `json:"profile_path"` // 性能分析文件目录
}

var rootParams = &RootParams{}

var rootCmd = &cobra.Command{
	Use:   "acon",
	Short: "Acon reads and writes Awk-Compatible Object Notation.",
	Long: "Acon reads and writes Awk-Compatible Object Notation, a line oriented format of strings, " +
		"arrays and tables. It can look up paths, reformat documents, convert them to and from JSON " +
		"and YAML, and evaluate expressions against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupColor(rootParams.Color, cmd.ErrOrStderr())
		setupLogger(rootParams.LogLevel, rootParams.LogFormat, cmd.ErrOrStderr())
		return startProfile(rootParams.Profile, rootParams.ProfilePath)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stopProfile()
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err in red, followed by the long explanation for
// structural parse errors.
func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)

	var perr *acon.Error
	if errors.As(err, &perr) {
		color.New(color.Faint).Fprintln(w, perr.Reason())
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Acon",
	Long:  `All software has versions. This is Acon's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootParams.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&rootParams.LogFormat, "log-format", "text", "log format (text, json)")
	flags.StringVar(&rootParams.Color, "color", "auto", "colorize output (auto, always, never)")
	flags.StringVar(&rootParams.Profile, "profile", "", "enable profiling (cpu, mem, allocs, heap, mutex, block, thread, trace)")
	flags.StringVar(&rootParams.ProfilePath, "profile-path", ".", "directory for profile output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(evalCmd)
}
