package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/logger"
	emailprovider "github.com/example/adapter-workshop/internal/providers/email"
	"github.com/example/adapter-workshop/internal/util"
)

// MaxSubjectRunes bounds the subject derived from a message.
const MaxSubjectRunes = 78

// EmailAdapter turns a plain notification into an email payload.
type EmailAdapter struct {
	logger   zerolog.Logger
	provider emailprovider.Provider
	from     string
}

// NewEmailAdapter binds an adapter to provider, sending from the given
// address.
func NewEmailAdapter(provider emailprovider.Provider, from string, log zerolog.Logger) (*EmailAdapter, error) {
	if provider == nil {
		return nil, errors.New("email notifier: provider dependency is required")
	}
	sender, err := util.NormalizeEmail(from)
	if err != nil {
		return nil, fmt.Errorf("email notifier: from: %w", err)
	}
	return &EmailAdapter{logger: logger.OrNop(log), provider: provider, from: sender}, nil
}

// Notify emails message to recipient. The subject is the message's first
// line.
func (a *EmailAdapter) Notify(ctx context.Context, recipient, message string) error {
	to, err := util.NormalizeEmail(recipient)
	if err != nil {
		return err
	}

	payload := &emailprovider.Payload{
		From:    a.from,
		To:      []string{to},
		Subject: subjectOf(message),
		Body:    message,
	}

	resp, err := a.provider.Send(ctx, payload)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		a.logger.Info().
			Str("channel", "email").
			Str("recipient", to).
			Err(err).
			Msg("email notification rejected")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	a.logger.Debug().
		Str("channel", "email").
		Str("recipient", to).
		Str("provider_id", resp.ID).
		Msg("email notification sent")
	return nil
}

func subjectOf(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return util.TruncateRunes(strings.TrimSpace(line), MaxSubjectRunes)
}
