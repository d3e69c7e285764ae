package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/fluxo/internal/model"
)

type codec interface {
	decode(r io.Reader) ([]model.Transaction, error)
	encode(w io.Writer, txns []model.Transaction) error
}

// Store owns one ledger file: a single table with the header in Columns,
// as a spreadsheet (.xlsx) or CSV (.csv). Every Save rewrites the whole
// file. There is no locking; two processes saving the same file can lose
// rows.
type Store struct {
	path  string
	codec codec
}

// New returns a Store for path. The format follows the file extension.
// The file does not need to exist.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("ledger path is empty")
	}

	var c codec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		c = xlsxCodec{}
	case ".csv":
		c = csvCodec{}
	default:
		return nil, fmt.Errorf("%w: %q (want .xlsx or .csv)", ErrUnsupportedFormat, path)
	}
	return &Store{path: path, codec: c}, nil
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every transaction in file order. A missing file is an empty
// ledger.
func (s *Store) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	defer f.Close()

	txns, err := s.codec.decode(f)
	if err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	return txns, nil
}

// Save replaces the file with txns. The content is written to a temporary
// file next to the target and renamed over it.
func (s *Store) Save(txns []model.Transaction) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("creating ledger dir: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := s.codec.encode(tmp, txns); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
