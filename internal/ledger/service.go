package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/fluxo/internal/model"
)

// Store is the persistence the Service needs. *store.Store satisfies it.
type Store interface {
	Load() ([]model.Transaction, error)
	Save(txns []model.Transaction) error
}

// Service provides business logic over one ledger. Every operation loads
// the whole ledger fresh from its Store; nothing is cached between calls.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a ledger Service backed by st.
func NewService(st Store) *Service {
	return &Service{store: st, now: time.Now}
}

// AddParams holds the raw user input for a new transaction.
type AddParams struct {
	Amount       string
	MovementDate string
	Note         string
	Kind         string
}

// AddTransaction validates params, stamps the entry time, appends the
// transaction and rewrites the ledger. On a save failure the transaction
// must be treated as not recorded.
func (s *Service) AddTransaction(params AddParams) (model.Transaction, error) {
	amount, err := ParseAmount(params.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	movement, err := ParseMovementDate(params.MovementDate)
	if err != nil {
		return model.Transaction{}, err
	}

	kind, err := ParseKind(params.Kind)
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Amount:       amount,
		MovementDate: movement,
		EntryTime:    s.stamp(),
		Note:         strings.TrimSpace(params.Note),
		Kind:         kind,
	}

	if err := s.append([]model.Transaction{txn}); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// ImportResult reports what Import did with a statement.
type ImportResult struct {
	Added      []model.Transaction
	Zero       int // rows with a zero amount
	Duplicates int // rows already in the ledger
}

// Import appends bank transactions in order with a single load and save.
// Negative bank amounts become outflows and zero amounts are skipped.
// A row whose movement date, kind, amount and note match a ledger row is
// taken as already imported; each ledger row absorbs at most one statement
// row, so repeated purchases within a statement are kept.
func (s *Service) Import(bank []model.BankTransaction) (ImportResult, error) {
	existing, err := s.store.Load()
	if err != nil {
		return ImportResult{}, fmt.Errorf("loading ledger: %w", err)
	}

	seen := make(map[importKey]int, len(existing))
	for _, txn := range existing {
		seen[keyOf(txn)]++
	}

	entryTime := s.stamp()
	var res ImportResult
	for _, bt := range bank {
		if bt.Amount.IsZero() {
			res.Zero++
			continue
		}
		kind := model.KindInflow
		if bt.Amount.IsNegative() {
			kind = model.KindOutflow
		}
		txn := model.Transaction{
			Amount:       bt.Amount.Abs().Round(2),
			MovementDate: dayOf(bt.Date),
			EntryTime:    entryTime,
			Note:         strings.TrimSpace(bt.Description),
			Kind:         kind,
		}
		if k := keyOf(txn); seen[k] > 0 {
			seen[k]--
			res.Duplicates++
			continue
		}
		res.Added = append(res.Added, txn)
	}

	if len(res.Added) == 0 {
		return res, nil
	}
	if err := s.save(existing, res.Added); err != nil {
		return ImportResult{}, err
	}
	return res, nil
}

type importKey struct {
	day    time.Time
	kind   model.Kind
	amount string
	note   string
}

func keyOf(txn model.Transaction) importKey {
	return importKey{
		day:    dayOf(txn.MovementDate),
		kind:   txn.Kind,
		amount: txn.Amount.StringFixed(2),
		note:   txn.Note,
	}
}

// View loads the ledger and computes the running balance over the
// transactions whose movement date is within [startText, endText].
// Both bounds empty means no filter. The filter is validated before the
// ledger is read.
func (s *Service) View(startText, endText string) (View, error) {
	f, err := ParseFilter(startText, endText)
	if err != nil {
		return View{}, err
	}
	return s.ViewFilter(f)
}

// ViewFilter is View with an already parsed filter.
func (s *Service) ViewFilter(f Filter) (View, error) {
	txns, err := s.store.Load()
	if err != nil {
		return View{}, fmt.Errorf("loading ledger: %w", err)
	}
	return Compute(txns, f), nil
}

func (s *Service) append(txns []model.Transaction) error {
	existing, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	return s.save(existing, txns)
}

func (s *Service) save(existing, txns []model.Transaction) error {
	all := make([]model.Transaction, 0, len(existing)+len(txns))
	all = append(all, existing...)
	all = append(all, txns...)

	if err := s.store.Save(all); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// stamp returns the current time truncated to the second, the precision
// the ledger file keeps.
func (s *Service) stamp() time.Time {
	return s.now().Truncate(time.Second)
}
