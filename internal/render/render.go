package render

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fluxo/internal/ledger"
	"github.com/cleared-dev/fluxo/internal/model"
)

// Headers are the column titles of the history table.
var Headers = []string{"Valor", "Data Movimento", "Data Lançamento", "Nota", "Tipo", "Saldo Acumulado"}

const (
	colValue   = 0
	colBalance = 5
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	numberStyle   = cellStyle.Align(lipgloss.Right)
	negativeStyle = numberStyle.Foreground(lipgloss.Color("1"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	totalStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Money formats amount in the given ISO currency. Unknown currencies fall
// back to the plain number followed by the code.
func Money(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// Table writes the history table followed by the totals.
func Table(w io.Writer, v ledger.View, currency string) error {
	if len(v.Rows) == 0 {
		if _, err := fmt.Fprintln(w, dimStyle.Render("Nenhum movimento.")); err != nil {
			return err
		}
		return Summary(w, v, currency)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{
			Money(r.Amount, currency),
			model.FormatDate(r.MovementDate),
			model.FormatTimestamp(r.EntryTime),
			r.Note,
			string(r.Kind),
			Money(r.Balance, currency),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case colBalance:
				if row >= 0 && row < len(v.Rows) && v.Rows[row].Balance.IsNegative() {
					return negativeStyle
				}
				return numberStyle
			case colValue:
				return numberStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	return Summary(w, v, currency)
}

// Summary writes the filter (if any), inflow and outflow sums and the
// total balance.
func Summary(w io.Writer, v ledger.View, currency string) error {
	if !v.Filter.IsZero() {
		if _, err := fmt.Fprintf(w, "%s %s a %s\n",
			dimStyle.Render("Filtro:"),
			model.FormatDate(v.Filter.Start),
			model.FormatDate(v.Filter.End),
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Entradas: %s  Saídas: %s\n%s\n",
		Money(v.Inflow, currency),
		Money(v.Outflow, currency),
		totalStyle.Render("Saldo Total: "+Money(v.Total, currency)),
	)
	return err
}
