package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/fileview/pkg/checksum"
	"github.com/vertti/fileview/pkg/display"
	"github.com/vertti/fileview/pkg/output"
)

var (
	checksumAlgo string
	humanSize    bool
	verbose      bool
)

func init() {
	rootCmd.Flags().StringVar(&checksumAlgo, "checksum", "", "add a content digest to the file information ("+checksum.SupportedList()+")")
	rootCmd.Flags().BoolVar(&humanSize, "human", false, "also show the file size in human-readable units")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func runRoot(cmd *cobra.Command, args []string) error {
	algo, err := checksum.Parse(checksumAlgo)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)
	out := cmd.OutOrStdout()
	output.PrintBanner(out)

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		path, err = promptForPath(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if path == "" {
			_, _ = fmt.Fprintln(out, "No file path provided. Exiting...")
			return nil
		}
	}

	logger.Debug("displaying file", "path", path, "checksum", string(algo), "human", humanSize)

	d := &display.Display{
		Path:     path,
		Checksum: algo,
		Human:    humanSize,
		FS:       &display.RealFileSystem{},
		Out:      out,
		Err:      cmd.ErrOrStderr(),
		Logger:   logger,
	}

	return runDisplay(d)
}
