package ledger

import (
	"errors"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fluxo/internal/model"
)

// memStore implements Store in memory and counts calls.
type memStore struct {
	txns    []model.Transaction
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load() ([]model.Transaction, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Transaction(nil), m.txns...), nil
}

func (m *memStore) Save(txns []model.Transaction) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.txns = append([]model.Transaction(nil), txns...)
	return nil
}

var errDiskFull = errors.New("disk full")

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(st Store) *Service {
	svc := NewService(st)
	svc.now = fixedClock(time.Date(2024, 5, 13, 8, 30, 15, 500, time.Local))
	return svc
}

func txn(amount string, movement time.Time, kind model.Kind) model.Transaction {
	return model.Transaction{
		Amount:       dec(amount),
		MovementDate: movement,
		EntryTime:    time.Date(2024, 5, 13, 8, 0, 0, 0, time.Local),
		Kind:         kind,
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
