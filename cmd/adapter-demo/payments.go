package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/example/adapter-workshop/internal/metrics"
	"github.com/example/adapter-workshop/internal/providers/factory"
	"github.com/example/adapter-workshop/internal/store"
)

func newPaymentsCmd(a *app) *cobra.Command {
	var (
		product     string
		amount      float64
		refund      bool
		dumpMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Buy (and refund) a product through every configured gateway",
		Long: `payments builds one OnlineStore per processor listed in STORE_PROVIDERS
and runs the same purchase through each. The store code is identical for
every gateway; only the adapter behind it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			reg := prometheus.NewRegistry()
			rec, err := metrics.NewRecorder(reg)
			if err != nil {
				return err
			}

			for _, name := range a.cfg.Store.Providers {
				proc, err := factory.Processor(name, a.cfg, a.logger, rec)
				if err != nil {
					return err
				}
				shop, err := store.New(proc, out, a.logger.With().Str("processor", name).Logger())
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "== %s ==\n", name)
				txID, err := shop.PurchaseProduct(cmd.Context(), product, amount)
				if err != nil {
					return err
				}
				if refund {
					if err := shop.RefundProduct(cmd.Context(), txID); err != nil {
						return err
					}
				}
				fmt.Fprintln(out)
			}

			if dumpMetrics {
				return metrics.WriteText(out, reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "Laptop", "Name of the product to buy")
	cmd.Flags().Float64Var(&amount, "amount", 999.99, "Price in major currency units")
	cmd.Flags().BoolVar(&refund, "refund", true, "Refund the purchase afterwards")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print processor counters in Prometheus text format")

	return cmd
}
