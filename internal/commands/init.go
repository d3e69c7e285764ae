package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/config"
	"github.com/cleared-dev/fluxo/internal/render"
	"github.com/cleared-dev/fluxo/internal/store"
)

func newInitCommand(s *session) *cobra.Command {
	var currency string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, s, currency, force)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", config.Default().Currency, "ISO currency code used for display")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, s *session, currency string, force bool) error {
	if !force {
		if _, err := os.Stat(s.configPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", s.configPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking config: %w", err)
		}
	}

	cfg := config.Default()
	if s.ledgerFlag != "" {
		cfg.Ledger = s.ledgerFlag
	}
	cfg.Currency = currency

	// Reject an unusable ledger path before writing anything.
	if _, err := store.New(cfg.Ledger); err != nil {
		return err
	}

	if err := config.Save(s.configPath, cfg); err != nil {
		return err
	}

	render.Successf(cmd.OutOrStdout(), "Wrote %s (ledger: %s)", s.configPath, cfg.Ledger)
	return nil
}
