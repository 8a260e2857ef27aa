package main

import (
	"github.com/spf13/cobra"

	"github.com/example/adapter-workshop/internal/reversal"
)

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse",
		Short: "Adapt a reversed-string adaptee to the Target contract",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			reversal.Run(cmd.OutOrStdout())
		},
	}
}
