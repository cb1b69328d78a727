// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/outputfile/cliout"
	"github.com/jongio/outputfile/logutil"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var debug, noColor bool

	cmd := &cobra.Command{
		Use:           "outputfile",
		Short:         "Write files only when their content changed",
		Long:          "outputfile stages writes and commits them only when the content differs\nfrom what is already on disk, preserving timestamps of unchanged files.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debug, false)
			if noColor {
				cliout.NoColor()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newWriteCmd())
	cmd.AddCommand(newApplyCmd())
	return cmd
}
