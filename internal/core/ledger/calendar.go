package ledger

import (
	"fmt"
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// MonthlyCalendar is a fixed period table covering the twelve months of a
// single calendar year. Period numbers are the calendar month numbers.
type MonthlyCalendar struct {
	year    int
	periods [12]domain.Period
}

var _ ports.PeriodCalendar = (*MonthlyCalendar)(nil)

// NewMonthlyCalendar builds the period table for the given year.
func NewMonthlyCalendar(year int) *MonthlyCalendar {
	c := &MonthlyCalendar{year: year}
	for m := 1; m <= 12; m++ {
		start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		c.periods[m-1] = domain.Period{Period: m, DateStart: start, DateEnd: end}
	}
	return c
}

// PeriodFor returns the period containing the given date.
func (c *MonthlyCalendar) PeriodFor(date time.Time) (domain.Period, error) {
	if date.Year() != c.year {
		return domain.Period{}, fmt.Errorf("%w: %s", ErrUnknownPeriod, date.Format("2006-01-02"))
	}
	return c.periods[int(date.Month())-1], nil
}

// PeriodStart returns the first day of the given period number.
func (c *MonthlyCalendar) PeriodStart(period int) (time.Time, error) {
	if period < 1 || period > 12 {
		return time.Time{}, fmt.Errorf("%w: period %d", ErrNoNextPeriod, period)
	}
	return c.periods[period-1].DateStart, nil
}

// NextPeriodStart returns the first day of the period following the one
// containing the given date. A date in the final period has no successor.
func (c *MonthlyCalendar) NextPeriodStart(date time.Time) (time.Time, error) {
	p, err := c.PeriodFor(date)
	if err != nil {
		return time.Time{}, err
	}
	if p.Period >= 12 {
		return time.Time{}, fmt.Errorf("%w: after period %d", ErrNoNextPeriod, p.Period)
	}
	return c.periods[p.Period].DateStart, nil
}

// PeriodOf derives the accounting period for a transaction date: the
// calendar month number, or PeriodUnknown for a missing date.
func PeriodOf(date time.Time) int {
	if date.IsZero() {
		return domain.PeriodUnknown
	}
	return int(date.Month())
}
