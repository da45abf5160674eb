// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/gogpu/rendergraph/backend"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:   "validate <frame.yaml>",
		Short: "Check a frame file and execute it headless",
		Long: `Validate the frame file, check the graph for unknown ids and cycles, then
execute it on a backend (the in-memory recording device by default).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fr, err := loadFrame(rootOpts, args[0])
			if err != nil {
				return err
			}
			if err := fr.Graph.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			plan, err := fr.Graph.Plan()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			dev, err := backend.Get(backendName)
			if err != nil {
				return err
			}
			cbs, err := fr.Graph.Execute(dev)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d passes, %d barriers, %d command buffers)\n",
				fr.Name, len(plan.Steps), plan.NumBarriers(), len(cbs))
			return err
		},
	}

	cmd.Flags().StringVar(&backendName, "backend", "record", "device backend to execute on")
	return cmd
}
