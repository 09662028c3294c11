package domain

import (
	"fmt"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
)

// priorityCycle is the fixed order CyclePriority advances through, wrapping
// from URGENT back to LOW.
var priorityCycle = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// SetStatus overwrites the persisted workflow status. There is no enforced
// transition table: any status may move to any other, because real-world
// correction (un-completing a mistaken entry) must stay possible. Values
// outside the enumerated set are rejected before they can reach storage.
func SetStatus(o *Obligation, status WorkflowStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown workflow status %q", apperrors.ErrValidation, status)
	}
	o.WorkflowStatus = status
	o.LastUpdatedAt = now
	return nil
}

// CyclePriority advances LOW -> MEDIUM -> HIGH -> URGENT -> LOW. A stored
// priority outside the enumerated set is rejected rather than silently
// reset.
func CyclePriority(o *Obligation, now time.Time) error {
	for i, p := range priorityCycle {
		if o.Priority == p {
			o.Priority = priorityCycle[(i+1)%len(priorityCycle)]
			o.LastUpdatedAt = now
			return nil
		}
	}
	return fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, o.Priority)
}

// ToggleCompletion flips between PENDING and COMPLETED. An OVERDUE or
// CANCELLED obligation normalizes to COMPLETED in a single step; only a
// COMPLETED one goes back to PENDING.
func ToggleCompletion(o *Obligation, now time.Time) {
	if o.WorkflowStatus == StatusCompleted {
		o.WorkflowStatus = StatusPending
	} else {
		o.WorkflowStatus = StatusCompleted
	}
	o.LastUpdatedAt = now
}
