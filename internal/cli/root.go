// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the rgraph command.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/internal/framefile"
	"github.com/gogpu/rendergraph/internal/report"
	"github.com/spf13/cobra"

	// Register the recording device used by validate.
	_ "github.com/gogpu/rendergraph/backend/record"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Order   string // "fifo" | "lifo"

	order  rendergraph.ReadyOrder
	logger *slog.Logger
}

// NewRootCommand creates the root command for the rgraph CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rgraph",
		Short: "Inspect render graph frame files",
		Long: `rgraph schedules the passes of a YAML frame description, inserts the
barriers their resource usages require and prints the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			order, err := rendergraph.ParseReadyOrder(opts.Order)
			if err != nil {
				return fmt.Errorf("invalid --order %q: must be fifo or lifo", opts.Order)
			}
			opts.order = order
			if opts.Verbose {
				opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log scheduling and barrier decisions to stderr")
	cmd.PersistentFlags().StringVar(&opts.Order, "order", "fifo", "tie-break for ready passes (fifo|lifo)")

	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewDOTCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// loadFrame loads, validates and builds the frame file at path. With
// --verbose the graph logs to stderr; the package logger is left alone.
func loadFrame(opts *RootOptions, path string) (*framefile.Frame, error) {
	f, err := framefile.Load(path)
	if err != nil {
		return nil, err
	}
	graphOpts := []rendergraph.Option{rendergraph.WithReadyOrder(opts.order)}
	if opts.logger != nil {
		graphOpts = append(graphOpts, rendergraph.WithLogger(opts.logger))
	}
	return framefile.Build(f, graphOpts...), nil
}

// loadReport builds the frame at path and plans it.
func loadReport(opts *RootOptions, path string) (*report.Report, error) {
	fr, err := loadFrame(opts, path)
	if err != nil {
		return nil, err
	}
	plan, err := fr.Graph.Plan()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &report.Report{Title: fr.Name, Graph: fr.Graph, Plan: plan, Names: fr}, nil
}
