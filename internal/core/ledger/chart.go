package ledger

import (
	"fmt"
	"sync"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// Nominals every installation carries: the control accounts reconciled
// against the sub-ledgers and the contra for unmatched bank movements.
const (
	NominalPurchaseControl = "purchase_ledger_control_account"
	NominalSalesControl    = "sales_ledger_control_account"
	NominalBankContra      = "bank_contra"
)

// ChartOfAccounts is the registry of nominal accounts. Each name may appear
// at most once; AddNominal rejects duplicates rather than shadowing.
type ChartOfAccounts struct {
	mu       sync.RWMutex
	nominals map[string]domain.NominalAccount
	order    []string
}

// NewChartOfAccounts creates an empty chart.
func NewChartOfAccounts() *ChartOfAccounts {
	return &ChartOfAccounts{nominals: make(map[string]domain.NominalAccount)}
}

// AddNominal registers a nominal account. Registering a name twice returns
// apperrors.ErrDuplicate.
func (c *ChartOfAccounts) AddNominal(nominal domain.NominalAccount) error {
	if nominal.Name == "" {
		return fmt.Errorf("%w: nominal name is required", apperrors.ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.nominals[nominal.Name]; exists {
		return fmt.Errorf("%w: nominal %q", apperrors.ErrDuplicate, nominal.Name)
	}
	c.nominals[nominal.Name] = nominal
	c.order = append(c.order, nominal.Name)
	return nil
}

// Nominal returns the named account, or apperrors.ErrNotFound.
func (c *ChartOfAccounts) Nominal(name string) (domain.NominalAccount, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nominal, ok := c.nominals[name]
	if !ok {
		return domain.NominalAccount{}, fmt.Errorf("%w: nominal %q", apperrors.ErrNotFound, name)
	}
	return nominal, nil
}

// Nominals returns all accounts in registration order.
func (c *ChartOfAccounts) Nominals() []domain.NominalAccount {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.NominalAccount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.nominals[name])
	}
	return out
}
