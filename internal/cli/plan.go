// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import "github.com/spf13/cobra"

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <frame.yaml>",
		Short: "Print the execution order and barriers of a frame",
		Long: `Print every pass of the frame in execution order. Each pass is followed
by the barriers recorded before it and their stage/access masks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadReport(rootOpts, args[0])
			if err != nil {
				return err
			}
			return r.WriteText(cmd.OutOrStdout())
		},
	}
}

// NewDOTCommand creates the dot command.
func NewDOTCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <frame.yaml>",
		Short: "Print a frame as a Graphviz graph",
		Example: `  rgraph dot frame.yaml | dot -Tsvg > frame.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadReport(rootOpts, args[0])
			if err != nil {
				return err
			}
			return r.WriteDOT(cmd.OutOrStdout())
		},
	}
}
