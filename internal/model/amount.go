package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the exclusive upper bound on an amount's magnitude. With two
// decimal places this keeps every amount within the 15 significant digits a
// spreadsheet number cell holds exactly.
var MaxAmount = decimal.New(1, 13)

// maxExponent bounds the exponent accepted in text like "1e5", so that
// rounding never has to build an enormous integer.
const maxExponent = 30

// ErrAmountOutOfRange is returned by ParseDecimal for amounts that cannot be
// stored exactly.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ParseDecimal parses a signed decimal amount and rejects values outside
// (-MaxAmount, MaxAmount). The result is not rounded.
func ParseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountOutOfRange, text)
	}
	if d.Abs().GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q is not below %s", ErrAmountOutOfRange, text, MaxAmount)
	}
	return d, nil
}
