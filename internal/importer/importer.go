package importer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cleared-dev/fluxo/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParseFile parses the statement at path with the named format.
func (r *Registry) ParseFile(path, format string) ([]model.BankTransaction, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown statement format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return txns, nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Chase())
	r.Register(Nubank())
	return r
}
