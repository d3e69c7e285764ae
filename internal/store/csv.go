package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/fluxo/internal/model"
)

// Columns is the ledger header, in file order.
var Columns = []string{"Valor", "Data Movimento", "Data Lançamento", "Nota", "Tipo"}

const (
	numFields    = 5
	colAmount    = 0
	colMovement  = 1
	colEntryTime = 2
	colNote      = 3
	colKind      = 4

	utf8BOM = "\ufeff"
)

type csvCodec struct{}

func (csvCodec) decode(r io.Reader) ([]model.Transaction, error) {
	return ReadTransactions(r)
}

func (csvCodec) encode(w io.Writer, txns []model.Transaction) error {
	return WriteTransactions(w, txns)
}

// ReadTransactions reads a ledger CSV. An empty input is an empty ledger.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes a ledger CSV (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colMovement] = model.FormatDate(txn.MovementDate)
	row[colEntryTime] = model.FormatTimestamp(txn.EntryTime)
	row[colNote] = txn.Note
	row[colKind] = string(txn.Kind)
	return row
}

// UnmarshalTransaction converts a row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := model.ParseDecimal(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing Valor %q: %w", record[colAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative Valor %q", record[colAmount])
	}

	movement, err := model.ParseDate(record[colMovement])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing Data Movimento %q: %w", record[colMovement], err)
	}

	entryTime, err := model.ParseTimestamp(record[colEntryTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing Data Lançamento %q: %w", record[colEntryTime], err)
	}

	kind, err := model.ParseKind(record[colKind])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing Tipo: %w", err)
	}

	return model.Transaction{
		Amount:       amount.Round(2),
		MovementDate: movement,
		EntryTime:    entryTime,
		Note:         record[colNote],
		Kind:         kind,
	}, nil
}

func checkHeader(header []string) error {
	if len(header) != numFields {
		return fmt.Errorf("header has %d columns, want %d", len(header), numFields)
	}
	for i, want := range Columns {
		got := strings.TrimSpace(header[i])
		if i == 0 {
			got = strings.TrimPrefix(got, utf8BOM)
		}
		if got != want {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}
