package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/importer"
	"github.com/cleared-dev/fluxo/internal/render"
)

func newImportCommand(s *session) *cobra.Command {
	var format string
	registry := importer.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Append the transactions of a bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, s, registry, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "nubank", "statement format ("+strings.Join(registry.Formats(), ", ")+")")

	return cmd
}

func runImport(cmd *cobra.Command, s *session, registry *importer.Registry, path, format string) error {
	bank, err := registry.ParseFile(path, format)
	if err != nil {
		return err
	}

	svc, err := s.service()
	if err != nil {
		return err
	}

	res, err := svc.Import(bank)
	if err != nil {
		return err
	}

	if res.Zero > 0 {
		render.Warningf(cmd.ErrOrStderr(), "skipped %d zero-amount rows", res.Zero)
	}
	if res.Duplicates > 0 {
		render.Warningf(cmd.ErrOrStderr(), "skipped %d rows already in the ledger", res.Duplicates)
	}
	render.Successf(cmd.OutOrStdout(), "Imported %d transactions into %s", len(res.Added), s.ledgerPath())

	v, err := svc.View("", "")
	if err != nil {
		return err
	}
	return render.Summary(cmd.OutOrStdout(), v, s.currency())
}
