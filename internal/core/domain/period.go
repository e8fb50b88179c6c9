package domain

import "time"

// PeriodUnknown is the sentinel period assigned to rows whose transaction
// date is missing.
const PeriodUnknown = -1

// Period is one accounting month in the period calendar.
type Period struct {
	Period    int       `json:"period"`
	DateStart time.Time `json:"dateStart"`
	DateEnd   time.Time `json:"dateEnd"`
}
