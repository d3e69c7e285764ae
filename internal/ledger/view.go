package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fluxo/internal/model"
)

// Filter selects transactions by movement date, both ends inclusive.
// The zero Filter selects everything; use NewFilter for a date range.
type Filter struct {
	Start time.Time
	End   time.Time
	set   bool
}

// NewFilter returns a filter over [start, end]. Any dates are valid,
// including the zero time.
func NewFilter(start, end time.Time) Filter {
	return Filter{Start: start, End: end, set: true}
}

// IsZero reports whether the filter is unset.
func (f Filter) IsZero() bool {
	return !f.set
}

// Contains reports whether d falls in [Start, End], compared by day.
func (f Filter) Contains(d time.Time) bool {
	if f.IsZero() {
		return true
	}
	day := dayOf(d)
	return !day.Before(dayOf(f.Start)) && !day.After(dayOf(f.End))
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Row is a transaction plus the running balance after it.
type Row struct {
	model.Transaction
	Balance decimal.Decimal
}

// View is the computed, read-only projection of the ledger.
type View struct {
	Filter  Filter
	Rows    []Row
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Total   decimal.Decimal // balance after the last row
}

// Compute selects the transactions matching f and accumulates the running
// balance in collection order. Rows are never re-sorted by movement date.
func Compute(txns []model.Transaction, f Filter) View {
	v := View{
		Filter:  f,
		Rows:    []Row{},
		Inflow:  decimal.Zero,
		Outflow: decimal.Zero,
		Total:   decimal.Zero,
	}
	for _, txn := range txns {
		if !f.Contains(txn.MovementDate) {
			continue
		}
		if txn.Kind == model.KindInflow {
			v.Inflow = v.Inflow.Add(txn.Amount)
		} else {
			v.Outflow = v.Outflow.Add(txn.Amount)
		}
		v.Total = v.Total.Add(txn.Signed())
		v.Rows = append(v.Rows, Row{Transaction: txn, Balance: v.Total})
	}
	return v
}
