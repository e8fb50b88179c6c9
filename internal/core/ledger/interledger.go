package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// Journal type tags for inter-ledger postings.
const (
	JnlTypePurchaseInvoices = "pi"
	JnlTypeSalesInvoices    = "si"
	JnlTypeBank             = "bank"
)

// JournalSources pairs a generated journal with the sub-ledger transaction
// IDs it was built from, so the caller can mark them extracted after
// posting.
type JournalSources struct {
	Journal              domain.Journal
	SourceTransactionIDs []uint64
}

// InterLedgerJournalCreator translates unposted sub-ledger batches into
// balanced General Ledger journals against the control accounts.
type InterLedgerJournalCreator struct {
	purchaseControl string
	salesControl    string
	bankContra      string
}

// NewInterLedgerJournalCreator creates a creator posting to the standard
// control nominals.
func NewInterLedgerJournalCreator() *InterLedgerJournalCreator {
	return &InterLedgerJournalCreator{
		purchaseControl: NominalPurchaseControl,
		salesControl:    NominalSalesControl,
		bankContra:      NominalBankContra,
	}
}

// CreatePLToGLJournals builds one balanced journal covering all given
// purchase invoices: one line per invoice line plus a single control line
// for minus the sum of the invoice totals, dated at the latest constituent
// date.
func (c *InterLedgerJournalCreator) CreatePLToGLJournals(invoices []domain.Invoice) []JournalSources {
	return c.invoicesToJournals(invoices, c.purchaseControl, JnlTypePurchaseInvoices)
}

// CreateSLToGLJournals is the sales-side equivalent of CreatePLToGLJournals,
// posting the control line to the sales control account.
func (c *InterLedgerJournalCreator) CreateSLToGLJournals(invoices []domain.Invoice) []JournalSources {
	return c.invoicesToJournals(invoices, c.salesControl, JnlTypeSalesInvoices)
}

func (c *InterLedgerJournalCreator) invoicesToJournals(invoices []domain.Invoice, controlNominal, jnlType string) []JournalSources {
	if len(invoices) == 0 {
		return nil
	}
	var (
		lines     []domain.JournalLine
		sourceIDs []uint64
		total     int64
		latest    time.Time
	)
	for _, invoice := range invoices {
		total += invoice.Total()
		for _, line := range invoice.Lines {
			lines = append(lines, domain.JournalLine{
				Nominal:         line.Nominal,
				Description:     line.Description,
				Amount:          line.Amount,
				TransactionDate: line.TransactionDate,
			})
			sourceIDs = append(sourceIDs, line.TransactionID)
			if line.TransactionDate.After(latest) {
				latest = line.TransactionDate
			}
		}
	}
	lines = append(lines, domain.JournalLine{
		Nominal:         controlNominal,
		Description:     fmt.Sprintf("%s dispersal", controlNominal),
		Amount:          -total,
		TransactionDate: latest,
	})
	return []JournalSources{{
		Journal: domain.Journal{
			JnlType:         jnlType,
			TransactionDate: latest,
			Lines:           lines,
		},
		SourceTransactionIDs: sourceIDs,
	}}
}

// CreateBankToGLJournals groups bank transactions by (bank code, matched
// type), sums each group and emits one two-line balanced journal per group:
// the bank nominal against the matched target nominal, dated at the latest
// transaction in the group.
func (c *InterLedgerJournalCreator) CreateBankToGLJournals(transactions []domain.BankTransaction) []domain.Journal {
	type groupKey struct {
		bankCode    string
		matchedType string
	}
	type group struct {
		amount int64
		latest time.Time
	}
	groups := make(map[groupKey]*group)
	for _, txn := range transactions {
		key := groupKey{bankCode: txn.BankCode, matchedType: txn.MatchedType}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.amount += txn.Amount
		if txn.Date.After(g.latest) {
			g.latest = txn.Date
		}
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bankCode != keys[j].bankCode {
			return keys[i].bankCode < keys[j].bankCode
		}
		return keys[i].matchedType < keys[j].matchedType
	})

	journals := make([]domain.Journal, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		target := c.targetNominal(key.matchedType)
		description := fmt.Sprintf("bank %s %s", key.bankCode, key.matchedType)
		if key.matchedType == "" {
			description = fmt.Sprintf("bank %s unmatched", key.bankCode)
		}
		journals = append(journals, domain.Journal{
			JnlType:         JnlTypeBank,
			TransactionDate: g.latest,
			Lines: []domain.JournalLine{
				{Nominal: key.bankCode, Description: description, Amount: g.amount, TransactionDate: g.latest},
				{Nominal: target, Description: description, Amount: -g.amount, TransactionDate: g.latest},
			},
		})
	}
	return journals
}

func (c *InterLedgerJournalCreator) targetNominal(matchedType string) string {
	switch matchedType {
	case domain.MatchedTypeCreditor:
		return c.purchaseControl
	case domain.MatchedTypeDebtor:
		return c.salesControl
	default:
		return c.bankContra
	}
}
