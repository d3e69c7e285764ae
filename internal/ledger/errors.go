package ledger

import "errors"

// Validation failures. They are returned before the store is touched.
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingDate        = errors.New("movement date is required")
	ErrInvalidDate        = errors.New("invalid movement date, use DD/MM/YYYY")
	ErrInvalidKind        = errors.New("invalid kind")
	ErrInvalidFilterRange = errors.New("invalid filter dates, use DD/MM/YYYY")
	ErrIncompleteFilter   = errors.New("filter needs both start and end dates")
)
