package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obligation is the database representation of a derived filing instance.
// Amount and CurrencyCode are nullable; the engine never computes on them.
type Obligation struct {
	ObligationID   string           `db:"obligation_id"`
	CompanyID      string           `db:"company_id"`
	SourceRuleID   string           `db:"source_rule_id"`
	ObligationType string           `db:"obligation_type"`
	Title          string           `db:"title"`
	Description    string           `db:"description"`
	PeriodLabel    string           `db:"period_label"`
	DueDate        time.Time        `db:"due_date"`
	WorkflowStatus string           `db:"workflow_status"`
	Priority       string           `db:"priority"`
	Amount         *decimal.Decimal `db:"amount"`
	CurrencyCode   *string          `db:"currency_code"`
	AuditFields
}
