package common

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotImplemented marks a capability operation that a concrete variant did
// not override.
var ErrNotImplemented = errors.New("not implemented")

// NotImplemented annotates ErrNotImplemented with the operation name so
// callers can still detect it with errors.Is.
func NotImplemented(op string) error {
	if op == "" {
		return ErrNotImplemented
	}
	return fmt.Errorf("%s: %w", op, ErrNotImplemented)
}

// ErrInvalidAmount marks a payment amount no gateway could charge.
var ErrInvalidAmount = errors.New("invalid amount")

// maxAmount keeps amount*100 well below 2^53, so minor-unit conversions are
// exact and never overflow int64.
const maxAmount = 1e13

// ValidateAmount rejects amounts that are not finite, not positive or too
// large to express in minor units.
func ValidateAmount(amount float64) error {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, amount)
	case amount <= 0:
		return fmt.Errorf("%w: %v must be positive", ErrInvalidAmount, amount)
	case amount > maxAmount:
		return fmt.Errorf("%w: %v exceeds %v", ErrInvalidAmount, amount, maxAmount)
	}
	return nil
}
