package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fluxo/internal/model"
	"github.com/cleared-dev/fluxo/internal/store"
)

func TestAddTransaction_AppendsLastRow(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st)

	got, err := svc.AddTransaction(AddParams{
		Amount:       "150.456",
		MovementDate: "10/05/2024",
		Note:         "  salary ",
		Kind:         "Entrada",
	})
	require.NoError(t, err)
	assert.Equal(t, "150.46", got.Amount.StringFixed(2))
	assert.True(t, got.Amount.Equal(got.Amount.Round(2)))
	assert.True(t, got.MovementDate.Equal(date(2024, 5, 10)))
	assert.Equal(t, "salary", got.Note)
	assert.Equal(t, model.KindInflow, got.Kind)

	// Entry time is assigned by the service, at second precision.
	want := time.Date(2024, 5, 13, 8, 30, 15, 0, time.Local)
	assert.True(t, want.Equal(got.EntryTime), "entry time %s", got.EntryTime)

	assert.Equal(t, 1, st.loads)
	assert.Equal(t, 1, st.saves)

	v, err := svc.View("", "")
	require.NoError(t, err)
	require.Len(t, v.Rows, 1)
	last := v.Rows[len(v.Rows)-1]
	assert.True(t, got.Amount.Equal(last.Amount))
	assert.True(t, got.EntryTime.Equal(last.EntryTime))
	assert.Equal(t, got.Note, last.Note)
}

func TestAddTransaction_ValidationBeforeIO(t *testing.T) {
	tests := []struct {
		name   string
		params AddParams
		want   error
	}{
		{"bad amount", AddParams{Amount: "abc", MovementDate: "10/05/2024", Kind: "Entrada"}, ErrInvalidAmount},
		{"missing date", AddParams{Amount: "10", MovementDate: "", Kind: "Entrada"}, ErrMissingDate},
		{"bad date", AddParams{Amount: "10", MovementDate: "2024-05-10", Kind: "Entrada"}, ErrInvalidDate},
		{"impossible date", AddParams{Amount: "10", MovementDate: "31/04/2024", Kind: "Entrada"}, ErrInvalidDate},
		{"bad kind", AddParams{Amount: "10", MovementDate: "10/05/2024", Kind: "Pix"}, ErrInvalidKind},
		{"amount checked first", AddParams{Amount: "x", MovementDate: "", Kind: ""}, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &memStore{}
			svc := newTestService(st)

			_, err := svc.AddTransaction(tt.params)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, st.loads, "no load on validation failure")
			assert.Zero(t, st.saves, "no save on validation failure")
			assert.Empty(t, st.txns)
		})
	}
}

func TestAddTransaction_SaveFails(t *testing.T) {
	st := &memStore{
		txns:    []model.Transaction{txn("5.00", date(2024, 1, 1), model.KindInflow)},
		saveErr: errDiskFull,
	}
	svc := newTestService(st)

	_, err := svc.AddTransaction(AddParams{Amount: "10", MovementDate: "10/05/2024", Kind: "Entrada"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Len(t, st.txns, 1)
}

func TestAddTransaction_LoadFails(t *testing.T) {
	st := &memStore{loadErr: errDiskFull}
	svc := newTestService(st)

	_, err := svc.AddTransaction(AddParams{Amount: "10", MovementDate: "10/05/2024", Kind: "Entrada"})
	assert.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, st.saves)
}

func TestView_Empty(t *testing.T) {
	svc := newTestService(&memStore{})

	v, err := svc.View("", "")
	require.NoError(t, err)
	assert.Empty(t, v.Rows)
	assert.True(t, v.Total.IsZero())
}

func TestView_BadFilterDoesNotLoad(t *testing.T) {
	st := &memStore{txns: []model.Transaction{txn("5.00", date(2024, 1, 1), model.KindInflow)}}
	svc := newTestService(st)

	v, err := svc.View("2024-01-01", "31/01/2024")
	assert.ErrorIs(t, err, ErrInvalidFilterRange)
	assert.Empty(t, v.Rows)

	_, err = svc.View("01/01/2024", "")
	assert.ErrorIs(t, err, ErrIncompleteFilter)

	assert.Zero(t, st.loads)
}

func TestView_IsReadOnly(t *testing.T) {
	st := &memStore{txns: []model.Transaction{txn("5.00", date(2024, 1, 1), model.KindInflow)}}
	svc := newTestService(st)

	_, err := svc.View("", "")
	require.NoError(t, err)
	assert.Zero(t, st.saves)
}

func TestImport(t *testing.T) {
	st := &memStore{txns: []model.Transaction{txn("100.00", date(2025, 1, 1), model.KindInflow)}}
	svc := newTestService(st)

	res, err := svc.Import([]model.BankTransaction{
		{Date: date(2025, 1, 3), Description: "GITHUB INC", Amount: dec("-4.00")},
		{Date: date(2025, 1, 4), Description: "VOID", Amount: dec("0")},
		{Date: date(2025, 1, 6), Description: "ACME CONSULTING ", Amount: dec("3500")},
	})
	require.NoError(t, err)
	require.Len(t, res.Added, 2)
	assert.Equal(t, 1, res.Zero)
	assert.Zero(t, res.Duplicates)

	got := res.Added
	assert.Equal(t, model.KindOutflow, got[0].Kind)
	assert.Equal(t, "4.00", got[0].Amount.StringFixed(2))
	assert.False(t, got[0].Amount.IsNegative())
	assert.Equal(t, "GITHUB INC", got[0].Note)
	assert.Equal(t, model.KindInflow, got[1].Kind)
	assert.Equal(t, "ACME CONSULTING", got[1].Note)

	assert.Equal(t, 1, st.saves, "one save for the whole batch")
	require.Len(t, st.txns, 3)

	v, err := svc.View("", "")
	require.NoError(t, err)
	assert.Equal(t, "3596.00", v.Total.StringFixed(2))
}

func TestImport_Nothing(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st)

	res, err := svc.Import(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Added)
	assert.Zero(t, st.saves)
}

func TestImport_SkipsRowsAlreadyInLedger(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st)

	statement := []model.BankTransaction{
		{Date: date(2025, 1, 3), Description: "GITHUB INC", Amount: dec("-4.00")},
		{Date: date(2025, 1, 6), Description: "ACME CONSULTING", Amount: dec("3500.00")},
	}

	res, err := svc.Import(statement)
	require.NoError(t, err)
	require.Len(t, res.Added, 2)

	res, err = svc.Import(statement)
	require.NoError(t, err)
	assert.Empty(t, res.Added)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, 1, st.saves, "nothing new, nothing saved")
	assert.Len(t, st.txns, 2)
}

func TestImport_KeepsRepeatedRowsWithinStatement(t *testing.T) {
	st := &memStore{txns: []model.Transaction{
		{Amount: dec("5.00"), MovementDate: date(2025, 1, 3), Note: "COFFEE", Kind: model.KindOutflow},
	}}
	svc := newTestService(st)

	res, err := svc.Import([]model.BankTransaction{
		{Date: date(2025, 1, 3), Description: "COFFEE", Amount: dec("-5")},
		{Date: date(2025, 1, 3), Description: "COFFEE", Amount: dec("-5")},
		{Date: date(2025, 1, 3), Description: "COFFEE", Amount: dec("5")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Duplicates)
	require.Len(t, res.Added, 2)
	assert.Equal(t, model.KindOutflow, res.Added[0].Kind)
	assert.Equal(t, model.KindInflow, res.Added[1].Kind, "same amount, other direction")
	assert.Len(t, st.txns, 3)
}

// The scenarios below run against a real ledger file.

func newFileService(t *testing.T, name string) *Service {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	return NewService(st)
}

func TestScenario_SalaryAndGroceries(t *testing.T) {
	for _, name := range []string{"movimentos.xlsx", "movimentos.csv"} {
		t.Run(name, func(t *testing.T) {
			svc := newFileService(t, name)

			v, err := svc.View("", "")
			require.NoError(t, err)
			assert.Empty(t, v.Rows)
			assert.True(t, v.Total.IsZero())

			_, err = svc.AddTransaction(AddParams{Amount: "150.50", MovementDate: "10/05/2024", Note: "salary", Kind: "Entrada"})
			require.NoError(t, err)
			_, err = svc.AddTransaction(AddParams{Amount: "30", MovementDate: "12/05/2024", Note: "groceries", Kind: "Saída"})
			require.NoError(t, err)

			v, err = svc.View("", "")
			require.NoError(t, err)
			require.Len(t, v.Rows, 2)
			assert.Equal(t, "150.50", v.Rows[0].Balance.StringFixed(2))
			assert.Equal(t, "120.50", v.Rows[1].Balance.StringFixed(2))
			assert.Equal(t, "120.50", v.Total.StringFixed(2))
			assert.Equal(t, "groceries", v.Rows[1].Note)
		})
	}
}

func TestScenario_InvalidAmountPersistsNothing(t *testing.T) {
	svc := newFileService(t, "movimentos.xlsx")

	_, err := svc.AddTransaction(AddParams{Amount: "abc", MovementDate: "10/05/2024", Kind: "Entrada"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	v, err := svc.View("", "")
	require.NoError(t, err)
	assert.Empty(t, v.Rows)
}

func TestScenario_FilterExcludesNextMonth(t *testing.T) {
	svc := newFileService(t, "movimentos.csv")

	for _, d := range []string{"01/01/2024", "31/01/2024", "01/02/2024"} {
		_, err := svc.AddTransaction(AddParams{Amount: "10", MovementDate: d, Kind: "Entrada"})
		require.NoError(t, err)
	}

	v, err := svc.View("01/01/2024", "31/01/2024")
	require.NoError(t, err)
	require.Len(t, v.Rows, 2)
	for _, r := range v.Rows {
		assert.False(t, r.MovementDate.Equal(date(2024, 2, 1)))
	}
	assert.Equal(t, "20.00", v.Total.StringFixed(2))
}

func TestScenario_LaterEntryEarlierDateIsLast(t *testing.T) {
	svc := newFileService(t, "movimentos.xlsx")

	_, err := svc.AddTransaction(AddParams{Amount: "10", MovementDate: "10/05/2024", Kind: "Entrada"})
	require.NoError(t, err)
	_, err = svc.AddTransaction(AddParams{Amount: "1", MovementDate: "01/01/2020", Kind: "Saída"})
	require.NoError(t, err)

	v, err := svc.View("", "")
	require.NoError(t, err)
	require.Len(t, v.Rows, 2)
	assert.True(t, v.Rows[1].MovementDate.Equal(date(2020, 1, 1)))
	assert.Equal(t, "9.00", v.Total.StringFixed(2))
}

func TestScenario_CorruptLedger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movimentos.csv")
	st, err := store.New(path)
	require.NoError(t, err)
	require.NoError(t, writeFile(path, "Amount,Date\n1,2\n"))

	svc := NewService(st)
	_, err = svc.View("", "")
	assert.ErrorIs(t, err, store.ErrCorrupt)

	_, err = svc.AddTransaction(AddParams{Amount: "10", MovementDate: "10/05/2024", Kind: "Entrada"})
	assert.ErrorIs(t, err, store.ErrCorrupt)
}
