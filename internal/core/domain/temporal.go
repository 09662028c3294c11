package domain

import "time"

// dueSoonWindowDays is the width of the "due soon" window, inclusive of the
// due date itself.
const dueSoonWindowDays = 7

// DaysRemaining returns the number of whole calendar days from now to the
// obligation's due date. The sign matters: negative means the due date has
// already passed. Both instants are truncated to their date part, so the
// time of day never shifts the classification.
func DaysRemaining(dueDate, now time.Time) int {
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(ref).Hours() / 24)
}

// Classify computes the temporal status of an obligation against a caller
// supplied reference instant. It reads nothing but the due date; workflow
// status is deliberately ignored so that "is this late on the calendar"
// stays a separate question from "has someone acted on it". Callers that
// want to exclude resolved items filter on workflow status themselves.
func Classify(o Obligation, now time.Time) TemporalStatus {
	remaining := DaysRemaining(o.DueDate, now)
	switch {
	case remaining < 0:
		return TemporalOverdue
	case remaining <= dueSoonWindowDays:
		return TemporalDue
	default:
		return TemporalUpcoming
	}
}
