package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/config"
	"github.com/cleared-dev/fluxo/internal/ledger"
	"github.com/cleared-dev/fluxo/internal/render"
	"github.com/cleared-dev/fluxo/internal/store"
)

func newOpenCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>",
		Short: "Switch to another ledger file",
		Long: `Switch to another ledger file (.xlsx or .csv).

The path is saved in the config file and used by every later command until
open is run again. The file is read first, so a file that does not match
the ledger columns is rejected and the current ledger is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, s, args[0])
		},
	}
}

func runOpen(cmd *cobra.Command, s *session, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	st, err := store.New(abs)
	if err != nil {
		return err
	}

	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		render.Warningf(cmd.ErrOrStderr(), "%s does not exist yet; it will be created on the first add", abs)
	}

	txns, err := st.Load()
	if err != nil {
		return err
	}

	s.cfg.Ledger = abs
	if err := config.Save(s.configPath, s.cfg); err != nil {
		return err
	}

	render.Successf(cmd.OutOrStdout(), "Ledger loaded from %s", abs)
	return render.Table(cmd.OutOrStdout(), ledger.Compute(txns, ledger.Filter{}), s.currency())
}
