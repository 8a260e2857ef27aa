package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/adapter-workshop/internal/config"
	"github.com/example/adapter-workshop/internal/logger"
)

// app carries what every subcommand needs once the root has initialised.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "adapter-demo",
		Short: "Walk through the Adapter pattern with toy domains",
		Long: `adapter-demo runs small, self-contained demonstrations of the Adapter
pattern: a string reversal triad, two payment gateways behind one
processor contract, two notification channels and a line console
exposed through io.Reader/io.Writer.

Nothing leaves the process: every third party is simulated in memory.`,
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.App.LogLevel, err)
			}
			a.cfg = cfg
			a.logger = *log
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "adapter-demo version %s\n" .Version}}`)

	root.AddCommand(newReverseCmd())
	root.AddCommand(newPaymentsCmd(a))
	root.AddCommand(newNotifyCmd(a))
	root.AddCommand(newIOCmd())

	return root
}
