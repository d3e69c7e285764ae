package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/render"
	"github.com/cleared-dev/fluxo/internal/store"
)

func newExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Copy the current ledger to another file (.xlsx or .csv)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, s, args[0])
		},
	}
}

func runExport(cmd *cobra.Command, s *session, path string) error {
	src, err := s.store()
	if err != nil {
		return err
	}

	dst, err := store.New(path)
	if err != nil {
		return err
	}

	srcAbs, err := filepath.Abs(src.Path())
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	dstAbs, err := filepath.Abs(dst.Path())
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if srcAbs == dstAbs {
		return fmt.Errorf("export target is the current ledger %s", src.Path())
	}

	txns, err := src.Load()
	if err != nil {
		return err
	}
	if err := dst.Save(txns); err != nil {
		return err
	}

	render.Successf(cmd.OutOrStdout(), "Exported %d transactions to %s", len(txns), path)
	return nil
}
