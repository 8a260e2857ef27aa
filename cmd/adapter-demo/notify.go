package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/adapter-workshop/internal/adapters/notify"
	"github.com/example/adapter-workshop/internal/providers/factory"
)

func newNotifyCmd(a *app) *cobra.Command {
	var (
		emailTo string
		smsTo   string
	)

	cmd := &cobra.Command{
		Use:   "notify [message]",
		Short: "Send one message through the email and SMS adapters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := "Your order has shipped"
			if len(args) == 1 {
				message = args[0]
			}

			email, err := factory.EmailNotifier(a.cfg, a.logger)
			if err != nil {
				return err
			}
			sms, err := factory.SMSNotifier(a.cfg, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = notify.Broadcast(cmd.Context(), message,
				notify.Delivery{Notifier: email, Recipient: emailTo},
				notify.Delivery{Notifier: sms, Recipient: smsTo},
			)
			if err != nil {
				fmt.Fprintf(out, "Some notifications failed:\n%v\n", err)
				return nil
			}
			fmt.Fprintf(out, "Notified %s and %s\n", emailTo, smsTo)
			return nil
		},
	}

	cmd.Flags().StringVar(&emailTo, "email", "buyer@example.com", "Email recipient")
	cmd.Flags().StringVar(&smsTo, "phone", "+14155552671", "SMS recipient in E.164 format")

	return cmd
}
