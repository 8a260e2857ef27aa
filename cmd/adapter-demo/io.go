package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/adapter-workshop/internal/ioadapter"
)

func newIOCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "io [line...]",
		Short: "Copy lines between two legacy consoles through io.Reader/io.Writer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"first line", "second line"}
			}
			src := ioadapter.NewLegacyConsole(args...)
			dst := ioadapter.NewLegacyConsole()

			n, err := ioadapter.Copy(dst, src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Copied %d bytes:\n", n)
			for _, line := range dst.Lines() {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}
