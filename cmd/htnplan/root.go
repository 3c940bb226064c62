package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "htnplan",
		Short:         "Run the HTN/STN demo planner against a fixture",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRunCmd())
	return root
}
