// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/outputfile"
	"github.com/jongio/outputfile/cliout"
	"github.com/jongio/outputfile/manifest"
)

func newApplyCmd() *cobra.Command {
	var (
		showDiff bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "apply MANIFEST",
		Short: "Apply a YAML manifest of staged file writes",
		Example: `  outputfile apply gen/manifest.yaml
  outputfile apply --diff gen/manifest.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}

			var diffout outputfile.Diffout
			if showDiff && !quiet {
				diffout = cliout.Diff
			}

			results := m.Apply(diffout)

			states := make([]outputfile.State, 0, len(results))
			failed := 0
			for _, res := range results {
				states = append(states, res.State)
				if res.Err != nil {
					failed++
					if !quiet {
						cliout.Error("%s: %v", res.Path, res.Err)
					}
					continue
				}
				if !quiet {
					cliout.Status(res.State, res.Path)
				}
			}
			if !quiet {
				cliout.Summary(states)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print unified diffs for updated files")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress outcome output")
	return cmd
}
