package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/htnplan/domainconfig"
	"github.com/katalvlaran/htnplan/engine"
	"github.com/katalvlaran/htnplan/planlog"
)

func newRunCmd() *cobra.Command {
	var fixturePath string
	var maxRetries int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan a fixture's todo list against the built-in demo domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixturePath == "" {
				return fmt.Errorf("--fixture is required")
			}

			initial, todo, err := domainconfig.Load(fixturePath)
			if err != nil {
				return err
			}

			logger := planlog.Nop()
			if verbose {
				logger = planlog.New(os.Stderr)
			}

			p := engine.New(demoDomain(), engine.WithLogger(logger), engine.WithMaxRetries(maxRetries))

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			plan, err := p.FindPlan(ctx, initial, todo)
			if err != nil {
				return err
			}

			for i, a := range plan.Actions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s(%v)\n", i+1, a.Name, a.Args)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to a domainconfig fixture YAML file")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 10, "lazy refineahead retry budget")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}
