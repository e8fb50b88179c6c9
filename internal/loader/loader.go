package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
)

// dateLayout is the cashbook date format.
const dateLayout = "2006-01-02"

// CashbookRow is one raw cashbook movement. Amount is in minor units with
// the bank's sign (money in positive). The Creditor, Debtor, PL and BS
// columns classify what the movement settles; empty means unclassified.
type CashbookRow struct {
	RawID           int64
	Date            time.Time
	TransactionType string
	Description     string
	Amount          int64
	TransferType    string
	Creditor        string
	Debtor          string
	PL              string
	BS              string
	Notes           string
	Bank            string
}

// Cashbook column headers.
var cashbookColumns = []string{
	"Date", "Transaction type", "Description", "Amount", "Transfer Type",
	"Creditor", "Debtor", "PL", "BS", "Notes", "Bank",
}

// LoadCashbookCSV reads cashbook rows from r. Amounts are given in major
// units and converted to minor units; raw IDs are assigned sequentially
// from zero.
func LoadCashbookCSV(r io.Reader) ([]CashbookRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading cashbook header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []CashbookRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading cashbook line %d: %w", line, err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("cashbook line %d: %w", line, err)
		}
		row.RawID = int64(len(rows))
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadCashbookFile reads cashbook rows from the named CSV file.
func LoadCashbookFile(path string) ([]CashbookRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cashbook: %w", err)
	}
	defer f.Close()
	return LoadCashbookCSV(f)
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range cashbookColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: cashbook missing column %q", apperrors.ErrValidation, name)
		}
	}
	return index, nil
}

func parseRow(record []string, index map[string]int) (CashbookRow, error) {
	get := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := time.Parse(dateLayout, get("Date"))
	if err != nil {
		return CashbookRow{}, fmt.Errorf("%w: bad date %q", apperrors.ErrValidation, get("Date"))
	}
	amount, err := parseAmount(get("Amount"))
	if err != nil {
		return CashbookRow{}, err
	}

	return CashbookRow{
		Date:            date,
		TransactionType: get("Transaction type"),
		Description:     get("Description"),
		Amount:          amount,
		TransferType:    get("Transfer Type"),
		Creditor:        get("Creditor"),
		Debtor:          get("Debtor"),
		PL:              get("PL"),
		BS:              get("BS"),
		Notes:           get("Notes"),
		Bank:            get("Bank"),
	}, nil
}

// parseAmount converts a major-unit decimal string to minor units.
func parseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad amount %q", apperrors.ErrValidation, s)
	}
	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: amount %q has more than two decimal places", apperrors.ErrValidation, s)
	}
	return minor.IntPart(), nil
}
