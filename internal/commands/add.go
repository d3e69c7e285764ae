package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/ledger"
	"github.com/cleared-dev/fluxo/internal/model"
	"github.com/cleared-dev/fluxo/internal/render"
)

func newAddCommand(s *session) *cobra.Command {
	var params ledger.AddParams
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an inflow or outflow",
		Example: `  fluxo add --amount 150.50 --date 10/05/2024 --note salary
  fluxo add --amount 30 --date 12/05/2024 --note groceries --kind Saída
  fluxo add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || (!cmd.Flags().Changed("amount") && isTerminal()) {
				if err := promptTransaction(&params); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			} else if !cmd.Flags().Changed("amount") {
				return errors.New("--amount is required when not running interactively")
			}
			return runAdd(cmd, s, params)
		},
	}

	cmd.Flags().StringVar(&params.Amount, "amount", "", "amount, e.g. 150.50")
	cmd.Flags().StringVar(&params.MovementDate, "date", "", "movement date, DD/MM/YYYY")
	cmd.Flags().StringVar(&params.Note, "note", "", "free-text note")
	cmd.Flags().StringVar(&params.Kind, "kind", string(model.KindInflow), "Entrada or Saída")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "fill the entry in a form")

	return cmd
}

func runAdd(cmd *cobra.Command, s *session, params ledger.AddParams) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	txn, err := svc.AddTransaction(params)
	if err != nil {
		return err
	}

	render.Successf(cmd.OutOrStdout(), "Recorded %s %s (%s) in %s",
		txn.Kind,
		render.Money(txn.Amount, s.currency()),
		model.FormatDate(txn.MovementDate),
		s.ledgerPath(),
	)

	v, err := svc.View("", "")
	if err != nil {
		return err
	}
	return render.Summary(cmd.OutOrStdout(), v, s.currency())
}

// promptTransaction fills params from an interactive form. Field
// validation uses the same parsers as the ledger.
func promptTransaction(params *ledger.AddParams) error {
	if params.Kind == "" {
		params.Kind = string(model.KindInflow)
	}

	kinds := make([]string, len(model.Kinds))
	for i, k := range model.Kinds {
		kinds[i] = string(k)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Valor").
				Value(&params.Amount).
				Validate(func(v string) error {
					_, err := ledger.ParseAmount(v)
					return err
				}),
			huh.NewInput().
				Title("Data de Movimento (DD/MM/AAAA)").
				Value(&params.MovementDate).
				Validate(func(v string) error {
					_, err := ledger.ParseMovementDate(v)
					return err
				}),
			huh.NewInput().
				Title("Nota").
				Value(&params.Note),
			huh.NewSelect[string]().
				Title("Tipo").
				Options(huh.NewOptions(kinds...)...).
				Value(&params.Kind),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("reading entry: %w", err)
	}
	return nil
}

func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
