package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkflowStatus is the persisted, user- or system-mutated state of an
// obligation. It is independent of the temporal status computed from the
// due date: a COMPLETED obligation may still be late on the calendar.
type WorkflowStatus string

const (
	StatusPending   WorkflowStatus = "PENDING"
	StatusCompleted WorkflowStatus = "COMPLETED"
	StatusOverdue   WorkflowStatus = "OVERDUE"
	StatusCancelled WorkflowStatus = "CANCELLED"
)

// IsValid reports whether s is one of the recognized workflow statuses.
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Priority is the user-mutated urgency attached to an obligation.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsValid reports whether p is one of the recognized priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TemporalStatus is the display status of an obligation relative to a
// reference instant. It is derived, never persisted.
type TemporalStatus string

const (
	TemporalUpcoming TemporalStatus = "UPCOMING"
	TemporalDue      TemporalStatus = "DUE"
	TemporalOverdue  TemporalStatus = "OVERDUE"
)

// IsValid reports whether t is one of the recognized temporal statuses.
func (t TemporalStatus) IsValid() bool {
	switch t {
	case TemporalUpcoming, TemporalDue, TemporalOverdue:
		return true
	}
	return false
}

// Obligation is a concrete, dated filing instance derived from a catalog
// rule for one company. Title, description and period label are snapshots
// taken at instantiation time, not live references to the source rule.
type Obligation struct {
	ObligationID   string           `json:"obligationID"`   // Deterministic per (company, rule, year, occurrence)
	CompanyID      string           `json:"companyID"`      // FK -> companies.company_id
	SourceRuleID   string           `json:"sourceRuleID"`   // Provenance: rule this instance was derived from
	ObligationType string           `json:"obligationType"` // Snapshot of the rule's statutory instrument
	Title          string           `json:"title"`          // Snapshot, display heading
	Description    string           `json:"description"`    // Snapshot of the rule detail
	PeriodLabel    string           `json:"periodLabel"`    // Human-readable period (e.g., "Q2 2025")
	DueDate        time.Time        `json:"dueDate"`        // Concrete calendar date, midnight UTC
	WorkflowStatus WorkflowStatus   `json:"workflowStatus"` // PENDING on creation unless overridden
	Priority       Priority         `json:"priority"`       // MEDIUM on creation unless overridden
	Amount         *decimal.Decimal `json:"amount"`         // Optional, opaque to the engine
	CurrencyCode   *string          `json:"currencyCode"`   // Optional, opaque to the engine
	AuditFields                     // Embed CreatedAt, CreatedBy, etc.
}
