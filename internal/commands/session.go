package commands

import (
	"io"
	"log/slog"

	"github.com/cleared-dev/fluxo/internal/config"
	"github.com/cleared-dev/fluxo/internal/ledger"
	"github.com/cleared-dev/fluxo/internal/model"
	"github.com/cleared-dev/fluxo/internal/store"
)

// session is the state shared by the subcommands of one invocation: the
// resolved configuration and the ledger it points at.
type session struct {
	configPath string
	ledgerFlag string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

func (s *session) load(stderr io.Writer) error {
	level := slog.LevelWarn
	if s.verbose {
		level = slog.LevelDebug
	}
	s.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.log.Debug("config loaded", "path", s.configPath, "ledger", cfg.Ledger, "currency", cfg.Currency)
	return nil
}

// ledgerPath is the --ledger flag if given, else the configured ledger.
func (s *session) ledgerPath() string {
	if s.ledgerFlag != "" {
		return s.ledgerFlag
	}
	return s.cfg.Ledger
}

func (s *session) store() (*store.Store, error) {
	st, err := store.New(s.ledgerPath())
	if err != nil {
		return nil, err
	}
	s.log.Debug("using ledger", "path", st.Path())
	return st, nil
}

func (s *session) service() (*ledger.Service, error) {
	st, err := s.store()
	if err != nil {
		return nil, err
	}
	return ledger.NewService(&loggedStore{Store: st, log: s.log}), nil
}

// loggedStore traces loads and saves at debug level.
type loggedStore struct {
	*store.Store
	log *slog.Logger
}

func (l *loggedStore) Load() ([]model.Transaction, error) {
	txns, err := l.Store.Load()
	if err != nil {
		l.log.Debug("load failed", "path", l.Path(), "err", err)
		return nil, err
	}
	l.log.Debug("ledger loaded", "path", l.Path(), "rows", len(txns))
	return txns, nil
}

func (l *loggedStore) Save(txns []model.Transaction) error {
	if err := l.Store.Save(txns); err != nil {
		l.log.Debug("save failed", "path", l.Path(), "err", err)
		return err
	}
	l.log.Debug("ledger saved", "path", l.Path(), "rows", len(txns))
	return nil
}

func (s *session) currency() string {
	if s.cfg.Currency == "" {
		return config.Default().Currency
	}
	return s.cfg.Currency
}
