package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/fileview/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// display failures have already been reported on stderr
		if !errors.Is(err, ErrDisplayFailed) {
			output.PrintError(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fileview [file-path]",
	Short: "Print a text file's details and its contents with line numbers",
	Long: `fileview prints a text file's name, absolute path, size and line count,
then prints every line prefixed with its line number.

When no path is given, fileview asks for one on standard input.

Examples:
  fileview notes.txt
  fileview --human --checksum sha256 /var/log/syslog
  echo notes.txt | fileview`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}
