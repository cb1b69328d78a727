// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/outputfile"
	"github.com/jongio/outputfile/cliout"
)

// existingValue makes the Existing policy usable as a command line flag.
type existingValue outputfile.Existing

var _ pflag.Value = (*existingValue)(nil)

func (v *existingValue) String() string {
	return string(*v)
}

func (v *existingValue) Set(s string) error {
	existing, err := outputfile.ParseExisting(s)
	if err != nil {
		return err
	}
	*v = existingValue(existing)
	return nil
}

func (v *existingValue) Type() string {
	return "policy"
}

func newWriteCmd() *cobra.Command {
	var (
		mkdir    bool
		showDiff bool
		quiet    bool
		existing = existingValue(outputfile.ExistingKeepTimestamp)
	)

	cmd := &cobra.Command{
		Use:   "write TARGET",
		Short: "Stage stdin to TARGET, committing only on content change",
		Example: `  generate-config | outputfile write config/app.conf
  generate-config | outputfile write --mkdir --diff config/app.conf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var diff string
			opts := []outputfile.Option{
				outputfile.WithExisting(outputfile.Existing(existing)),
				outputfile.WithDiffout(func(d string) { diff = d }),
			}
			if mkdir {
				opts = append(opts, outputfile.WithMkdir())
			}

			state, err := outputfile.WriteFile(target, data, opts...)
			if err != nil {
				return err
			}
			if !quiet {
				cliout.Status(state, target)
				if showDiff && diff != "" {
					cliout.Diff(diff)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&mkdir, "mkdir", false, "Create missing parent directories")
	cmd.Flags().Var(&existing, "existing", "Existing file policy: error, keep, keep_timestamp, overwrite")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff when the file is updated")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress outcome output")
	return cmd
}
