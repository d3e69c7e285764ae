package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one row of a bank statement export.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative when money left the account
}
