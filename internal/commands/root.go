package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/buildinfo"
	"github.com/cleared-dev/fluxo/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:     "fluxo",
		Short:   "Personal cash-flow ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", config.DefaultFile, "config file")
	flags.StringVar(&s.ledgerFlag, "ledger", "", "ledger file for this run (overrides the config)")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		newInitCommand(s),
		newAddCommand(s),
		newViewCommand(s),
		newOpenCommand(s),
		newImportCommand(s),
		newExportCommand(s),
	)

	return rootCmd
}
