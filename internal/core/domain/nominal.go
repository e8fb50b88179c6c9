package domain

// Statement identifies which financial statement a nominal reports under.
type Statement string

const (
	BalanceSheet  Statement = "bs"
	ProfitAndLoss Statement = "pl"
)

// ExpectedSign is the balance sign a nominal normally carries.
type ExpectedSign string

const (
	DebitSign  ExpectedSign = "dr"
	CreditSign ExpectedSign = "cr"
)

// NominalAccount is one entry in the chart of accounts.
type NominalAccount struct {
	Name             string       `json:"name"`
	Statement        Statement    `json:"statement"`
	Heading          string       `json:"heading"`
	ExpectedSign     ExpectedSign `json:"expectedSign"`
	IsControlAccount bool         `json:"isControlAccount"`
	IsBankAccount    bool         `json:"isBankAccount"`
}

// TrialBalanceRow is one nominal's closing balance, enriched with chart
// metadata for report grouping.
type TrialBalanceRow struct {
	Nominal   string    `json:"nominal"`
	Statement Statement `json:"statement"`
	Heading   string    `json:"heading"`
	Balance   int64     `json:"balance"`
}
