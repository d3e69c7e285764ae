package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fluxo/internal/model"
)

// ParseAmount parses a non-negative decimal below model.MaxAmount and
// rounds it to 2 places.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := model.ParseDecimal(text)
	if errors.Is(err, model.ErrAmountOutOfRange) {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, text)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, text)
	}
	return d.Round(2), nil
}

// ParseMovementDate parses a required DD/MM/YYYY date.
func ParseMovementDate(text string) (time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, ErrMissingDate
	}
	d, err := model.ParseDate(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return d, nil
}

// ParseKind parses a kind label such as "Entrada" or "Saída".
func ParseKind(label string) (model.Kind, error) {
	k, err := model.ParseKind(label)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKind, err)
	}
	return k, nil
}

// ParseFilter parses an inclusive date range. Both bounds empty means no
// filter; exactly one empty is ErrIncompleteFilter.
func ParseFilter(startText, endText string) (Filter, error) {
	start := strings.TrimSpace(startText)
	end := strings.TrimSpace(endText)

	if start == "" && end == "" {
		return Filter{}, nil
	}
	if start == "" || end == "" {
		return Filter{}, ErrIncompleteFilter
	}

	s, err := model.ParseDate(start)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: start %q", ErrInvalidFilterRange, startText)
	}
	e, err := model.ParseDate(end)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: end %q", ErrInvalidFilterRange, endText)
	}
	return NewFilter(s, e), nil
}
