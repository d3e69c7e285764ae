package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fluxo/internal/ledger"
	"github.com/cleared-dev/fluxo/internal/render"
	"github.com/cleared-dev/fluxo/internal/watch"
)

func newViewCommand(s *session) *cobra.Command {
	var from, to string
	var follow bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the history with running balance",
		Example: `  fluxo view
  fluxo view --from 01/01/2024 --to 31/01/2024
  fluxo view --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad filter before anything is read or watched.
			f, err := ledger.ParseFilter(from, to)
			if err != nil {
				return err
			}
			if follow {
				return runViewWatch(cmd, s, f)
			}
			return runView(cmd, s, f)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first movement date, DD/MM/YYYY (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "last movement date, DD/MM/YYYY (inclusive)")
	cmd.Flags().BoolVarP(&follow, "watch", "w", false, "redraw whenever the ledger file changes")

	return cmd
}

func runView(cmd *cobra.Command, s *session, f ledger.Filter) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	v, err := svc.ViewFilter(f)
	if err != nil {
		return err
	}
	return render.Table(cmd.OutOrStdout(), v, s.currency())
}

func runViewWatch(cmd *cobra.Command, s *session, f ledger.Filter) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	return watch.File(ctx, s.ledgerPath(), watch.DefaultDebounce, func() {
		v, err := svc.ViewFilter(f)
		if err != nil {
			// The previous table stays on screen.
			render.Warningf(cmd.ErrOrStderr(), "%v", err)
			return
		}
		_, _ = out.Write([]byte("\033[H\033[2J"))
		if err := render.Table(out, v, s.currency()); err != nil {
			render.Warningf(cmd.ErrOrStderr(), "%v", err)
		}
	})
}
