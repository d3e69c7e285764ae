package store

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/fluxo/internal/model"
)

// sheetName is the sheet written on save. Reads use the first sheet,
// whatever its name.
const sheetName = "Sheet1"

// numFmtFixed2 is the built-in "0.00" number format.
const numFmtFixed2 = 2

type xlsxCodec struct{}

func (xlsxCodec) decode(r io.Reader) ([]model.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	// GetRows drops trailing empty cells, so short rows are padded back
	// to the schema width. Blank rows are skipped.
	var records [][]string
	var lines []int
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		for len(row) < numFields {
			row = append(row, "")
		}
		records = append(records, row)
		lines = append(lines, i+1)
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
			return nil, fmt.Errorf("row %d: %w", lines[i+1], err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (xlsxCodec) encode(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		row := MarshalTransaction(txn)
		cells := []any{
			txn.Amount.Round(2).InexactFloat64(),
			row[colMovement],
			row[colEntryTime],
			row[colNote],
			row[colKind],
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if len(txns) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtFixed2})
		if err != nil {
			return fmt.Errorf("creating amount style: %w", err)
		}
		last := fmt.Sprintf("A%d", len(txns)+1)
		if err := f.SetCellStyle(sheetName, "A2", last, style); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}
	if err := f.SetColWidth(sheetName, "B", "C", 20); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
