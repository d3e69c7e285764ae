package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction adds to or subtracts from the balance.
type Kind string

const (
	KindInflow  Kind = "Entrada"
	KindOutflow Kind = "Saída"
)

// Kinds lists the valid kinds in display order.
var Kinds = []Kind{KindInflow, KindOutflow}

// ParseKind maps a label to a Kind. Matching ignores case and accents on
// "Saida", and accepts the English names.
func ParseKind(label string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "entrada", "inflow", "in":
		return KindInflow, nil
	case "saída", "saida", "outflow", "out":
		return KindOutflow, nil
	}
	return "", fmt.Errorf("unknown kind %q (want %q or %q)", label, KindInflow, KindOutflow)
}

// Transaction is a single row of the ledger.
type Transaction struct {
	Amount       decimal.Decimal // never negative, 2 decimal places
	MovementDate time.Time       // date only, midnight UTC
	EntryTime    time.Time       // set once when the row is created
	Note         string
	Kind         Kind
}

// Signed returns the amount with the sign implied by Kind: positive for
// inflows, negative otherwise.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindInflow {
		return t.Amount
	}
	return t.Amount.Neg()
}
