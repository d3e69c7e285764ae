package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/fluxo/internal/model"
)

const utf8BOM = "\ufeff"

// statement describes a bank CSV export by the three columns the ledger
// needs. Other columns are ignored, but the row width must match.
type statement struct {
	format     string
	numFields  int
	dateLayout string // empty means DD/MM/YYYY via model.ParseDate

	colDate   int
	colAmount int
	colDesc   int

	// Expected header titles of colDate, colAmount and colDesc.
	dateTitle   string
	amountTitle string
	descTitle   string
}

func (s *statement) Format() string { return s.format }

// Parse reads the export and returns its rows in file order.
func (s *statement) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = s.numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", s.format, err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := s.checkHeader(records[0]); err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		bt, err := s.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, bt)
	}
	return txns, nil
}

func (s *statement) checkHeader(header []string) error {
	titles := []struct {
		col  int
		want string
	}{
		{s.colDate, s.dateTitle},
		{s.colAmount, s.amountTitle},
		{s.colDesc, s.descTitle},
	}
	for _, tt := range titles {
		col, want := tt.col, tt.want
		got := strings.TrimSpace(header[col])
		if col == 0 {
			got = strings.TrimPrefix(got, utf8BOM)
		}
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("not a %s export: column %d is %q, want %q", s.format, col+1, got, want)
		}
	}
	return nil
}

func (s *statement) parseRow(rec []string) (model.BankTransaction, error) {
	date, err := s.parseDate(rec[s.colDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[s.colDate], err)
	}

	amount, err := model.ParseDecimal(rec[s.colAmount])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[s.colAmount], err)
	}

	return model.BankTransaction{
		Date:        date,
		Description: strings.TrimSpace(rec[s.colDesc]),
		Amount:      amount,
	}, nil
}

func (s *statement) parseDate(text string) (time.Time, error) {
	if s.dateLayout == "" {
		return model.ParseDate(text)
	}
	return time.Parse(s.dateLayout, strings.TrimSpace(text))
}
