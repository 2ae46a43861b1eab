package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/credentiality/flog"
)

var (
	levelName  string
	includeGit bool
	toFile     bool
	toStderr   bool
)

var rootCmd = &cobra.Command{
	Use:   "flog [message]",
	Short: "Log a message with structured formatting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sev, err := flog.ParseSeverity(levelName)
		if err != nil {
			return err
		}

		opts := flog.DefaultOptions()
		opts.Level = "debug" // CLI emits whatever level was asked for
		opts.ToFile = toFile
		opts.ToStderr = toStderr
		opts.IncludeRevision = includeGit

		logger, err := flog.Acquire("cli", opts)
		if err != nil {
			return err
		}

		message := "hello, world"
		if len(args) == 1 {
			message = args[0]
		}
		logger.Log(sev, "%s", message)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&levelName, "level", "info", "log level (debug|info|warning|error|critical)")
	rootCmd.Flags().BoolVar(&includeGit, "git", false, "include git commit in startup log")
	rootCmd.Flags().BoolVar(&toFile, "to-file", true, "write to the platform log directory")
	rootCmd.Flags().BoolVar(&toStderr, "to-stderr", true, "write to standard error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
