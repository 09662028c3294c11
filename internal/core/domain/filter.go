package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
)

// FilterCriteria narrows an obligation collection. Every field is optional;
// the zero value matches everything. Set fields combine with AND.
type FilterCriteria struct {
	CompanyID      string         `json:"companyID"`
	WorkflowStatus WorkflowStatus `json:"workflowStatus"`
	TemporalStatus TemporalStatus `json:"temporalStatus"`
	ObligationType string         `json:"obligationType"`
	Priority       Priority       `json:"priority"`
}

// Statistics is the partition of a collection by temporal status. Upcoming,
// Due and Overdue always sum to Total.
type Statistics struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Due      int `json:"due"`
	Overdue  int `json:"overdue"`
}

// Filter returns the obligations matching the criteria, sorted ascending by
// due date with ties broken by ID. Temporal status is computed against now
// at filter time; it is never read from storage.
func Filter(obligations []Obligation, criteria FilterCriteria, now time.Time) ([]Obligation, error) {
	if criteria.WorkflowStatus != "" && !criteria.WorkflowStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown workflow status %q", apperrors.ErrValidation, criteria.WorkflowStatus)
	}
	if criteria.TemporalStatus != "" && !criteria.TemporalStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown temporal status %q", apperrors.ErrValidation, criteria.TemporalStatus)
	}
	if criteria.Priority != "" && !criteria.Priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, criteria.Priority)
	}

	matched := make([]Obligation, 0, len(obligations))
	for _, o := range obligations {
		if criteria.CompanyID != "" && o.CompanyID != criteria.CompanyID {
			continue
		}
		if criteria.WorkflowStatus != "" && o.WorkflowStatus != criteria.WorkflowStatus {
			continue
		}
		if criteria.ObligationType != "" && o.ObligationType != criteria.ObligationType {
			continue
		}
		if criteria.Priority != "" && o.Priority != criteria.Priority {
			continue
		}
		if criteria.TemporalStatus != "" && Classify(o, now) != criteria.TemporalStatus {
			continue
		}
		matched = append(matched, o)
	}

	sortByDueDate(matched)
	return matched, nil
}

// Summarize counts the temporal partitions of a collection against now.
func Summarize(obligations []Obligation, now time.Time) Statistics {
	stats := Statistics{Total: len(obligations)}
	for _, o := range obligations {
		switch Classify(o, now) {
		case TemporalOverdue:
			stats.Overdue++
		case TemporalDue:
			stats.Due++
		default:
			stats.Upcoming++
		}
	}
	return stats
}

// ForPeriod restricts a collection to obligations due in the given year and,
// when provided (non-zero), the given month, ISO week-of-year, or
// day-of-month. The parameters layer like a drill-down: day requires month,
// month and week require year. Out-of-range values fail fast rather than
// clamp, since silent clamping would hide caller bugs.
func ForPeriod(obligations []Obligation, year, month, week, day int) ([]Obligation, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: year is required for period views", apperrors.ErrValidation)
	}
	if month != 0 && (month < 1 || month > 12) {
		return nil, fmt.Errorf("%w: month %d outside 1-12", apperrors.ErrValidation, month)
	}
	if week != 0 && (week < 1 || week > 53) {
		return nil, fmt.Errorf("%w: week %d outside 1-53", apperrors.ErrValidation, week)
	}
	if day != 0 {
		if month == 0 {
			return nil, fmt.Errorf("%w: day filter requires a month", apperrors.ErrValidation)
		}
		if day < 1 || day > 31 {
			return nil, fmt.Errorf("%w: day %d outside 1-31", apperrors.ErrValidation, day)
		}
	}

	matched := make([]Obligation, 0, len(obligations))
	for _, o := range obligations {
		if o.DueDate.Year() != year {
			continue
		}
		if month != 0 && int(o.DueDate.Month()) != month {
			continue
		}
		if week != 0 {
			_, isoWeek := o.DueDate.ISOWeek()
			if isoWeek != week {
				continue
			}
		}
		if day != 0 && o.DueDate.Day() != day {
			continue
		}
		matched = append(matched, o)
	}

	sortByDueDate(matched)
	return matched, nil
}

// sortByDueDate orders ascending by due date, breaking ties by ID so the
// output is deterministic for equal dates.
func sortByDueDate(obligations []Obligation) {
	sort.Slice(obligations, func(i, j int) bool {
		if obligations[i].DueDate.Equal(obligations[j].DueDate) {
			return obligations[i].ObligationID < obligations[j].ObligationID
		}
		return obligations[i].DueDate.Before(obligations[j].DueDate)
	})
}
