package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrJournalUnbalanced is returned when a journal's lines do not sum to
	// zero. The journal is rejected before any row is persisted.
	ErrJournalUnbalanced = errors.New("journal lines do not sum to zero")

	// ErrNoNextPeriod is returned when a reversing or recurring journal
	// would fall outside the period calendar.
	ErrNoNextPeriod = errors.New("no next period in calendar")

	// ErrUnknownPeriod is returned for dates outside the period calendar.
	ErrUnknownPeriod = errors.New("date outside period calendar")
)

// JournalBalanceError reports a journal that failed the zero-sum check.
type JournalBalanceError struct {
	JnlType string
	Total   int64
}

func (e *JournalBalanceError) Error() string {
	return fmt.Sprintf("journal %q does not balance: lines sum to %d", e.JnlType, e.Total)
}

func (e *JournalBalanceError) Unwrap() error {
	return ErrJournalUnbalanced
}
