package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/logger"
	smsprovider "github.com/example/adapter-workshop/internal/providers/sms"
	"github.com/example/adapter-workshop/internal/util"
)

// MaxSMSRunes is the longest body forwarded to the SMS gateway.
const MaxSMSRunes = 160

// SMSAdapter turns a plain notification into a text message.
type SMSAdapter struct {
	logger   zerolog.Logger
	provider smsprovider.Provider
}

// NewSMSAdapter binds an adapter to provider.
func NewSMSAdapter(provider smsprovider.Provider, log zerolog.Logger) (*SMSAdapter, error) {
	if provider == nil {
		return nil, errors.New("sms notifier: provider dependency is required")
	}
	return &SMSAdapter{logger: logger.OrNop(log), provider: provider}, nil
}

// Notify texts message to the E.164 number in recipient.
func (a *SMSAdapter) Notify(ctx context.Context, recipient, message string) error {
	phone, err := util.NormalizeE164(recipient)
	if err != nil {
		return err
	}

	resp, err := a.provider.SendText(ctx, phone, util.TruncateRunes(message, MaxSMSRunes))
	if err != nil {
		return fmt.Errorf("sms notifier: %w", err)
	}
	if resp == nil || resp.Status != smsprovider.StatusQueued {
		detail := "no response"
		if resp != nil {
			detail = fmt.Sprintf("status %s (code %d): %s", resp.Status, resp.Code, resp.Detail)
		}
		a.logger.Info().
			Str("channel", "sms").
			Str("recipient", phone).
			Str("detail", detail).
			Msg("sms notification rejected")
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, detail)
	}

	a.logger.Debug().
		Str("channel", "sms").
		Str("recipient", phone).
		Str("provider_id", resp.ID).
		Msg("sms notification sent")
	return nil
}
