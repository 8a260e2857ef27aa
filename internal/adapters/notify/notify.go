// Package notify adapts unrelated messaging providers to one Notifier
// contract.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrDeliveryFailed marks a message the provider refused to deliver.
var ErrDeliveryFailed = errors.New("delivery failed")

// Notifier sends a plain text message to a recipient. The recipient's format
// depends on the channel.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}

// Delivery pairs a Notifier with the recipient address it understands.
type Delivery struct {
	Notifier  Notifier
	Recipient string
}

// Broadcast sends message through every delivery in order and joins the
// failures. One failing channel does not stop the others.
func Broadcast(ctx context.Context, message string, deliveries ...Delivery) error {
	var errs []error
	for i, d := range deliveries {
		if d.Notifier == nil {
			errs = append(errs, fmt.Errorf("delivery[%d]: notifier is nil", i))
			continue
		}
		if err := d.Notifier.Notify(ctx, d.Recipient, message); err != nil {
			errs = append(errs, fmt.Errorf("delivery[%d] to %s: %w", i, d.Recipient, err))
		}
	}
	return errors.Join(errs...)
}
