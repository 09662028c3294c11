package dto

import (
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaterializeQuery selects the target year for calendar materialization.
type MaterializeQuery struct {
	Year int `form:"year" binding:"required,min=1900,max=2200"`
}

// ListObligationsQuery carries the optional filter criteria of a list call.
// Unset fields match everything; set fields combine with AND.
type ListObligationsQuery struct {
	WorkflowStatus string `form:"workflowStatus" binding:"omitempty,oneof=PENDING COMPLETED OVERDUE CANCELLED"`
	TemporalStatus string `form:"temporalStatus" binding:"omitempty,oneof=UPCOMING DUE OVERDUE"`
	ObligationType string `form:"obligationType"`
	Priority       string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// PeriodQuery selects a drill-down window: year view, then optionally
// month, ISO week-of-year, or day-of-month. Range checks happen in the
// engine, which fails fast instead of clamping.
type PeriodQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month"`
	Week  int `form:"week"`
	Day   int `form:"day"`
}

// SetStatusRequest overwrites an obligation's workflow status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ObligationResponse defines the data returned for one obligation. The
// temporal status and days remaining are computed against the instant the
// request was served, never stored.
type ObligationResponse struct {
	ObligationID   string           `json:"obligationID"`
	CompanyID      string           `json:"companyID"`
	SourceRuleID   string           `json:"sourceRuleID"`
	ObligationType string           `json:"obligationType"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	PeriodLabel    string           `json:"periodLabel"`
	DueDate        string           `json:"dueDate"` // ISO date, no time component
	WorkflowStatus string           `json:"workflowStatus"`
	Priority       string           `json:"priority"`
	TemporalStatus string           `json:"temporalStatus"`
	DaysRemaining  int              `json:"daysRemaining"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	CurrencyCode   *string          `json:"currencyCode,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	LastEdited     time.Time        `json:"lastEdited"`
}

// StatisticsResponse is the temporal partition of a company's calendar.
type StatisticsResponse struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Due      int `json:"due"`
	Overdue  int `json:"overdue"`
}

// MaterializationResponse reports what a materialization run produced.
type MaterializationResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
	Warnings    []RuleWarningDTO     `json:"warnings"`
	Inserted    int                  `json:"inserted"`
}

// RuleWarningDTO reports a catalog entry skipped during materialization.
type RuleWarningDTO struct {
	RuleID string `json:"ruleID"`
	Reason string `json:"reason"`
}

// ToObligationResponse converts a domain Obligation, evaluating its
// temporal status against now.
func ToObligationResponse(o *domain.Obligation, now time.Time) ObligationResponse {
	return ObligationResponse{
		ObligationID:   o.ObligationID,
		CompanyID:      o.CompanyID,
		SourceRuleID:   o.SourceRuleID,
		ObligationType: o.ObligationType,
		Title:          o.Title,
		Description:    o.Description,
		PeriodLabel:    o.PeriodLabel,
		DueDate:        o.DueDate.Format("2006-01-02"),
		WorkflowStatus: string(o.WorkflowStatus),
		Priority:       string(o.Priority),
		TemporalStatus: string(domain.Classify(*o, now)),
		DaysRemaining:  domain.DaysRemaining(o.DueDate, now),
		Amount:         o.Amount,
		CurrencyCode:   o.CurrencyCode,
		CreatedAt:      o.CreatedAt,
		LastEdited:     o.LastUpdatedAt,
	}
}

// ToListObligationResponse converts a slice of domain obligations.
func ToListObligationResponse(obligations []domain.Obligation, now time.Time) []ObligationResponse {
	res := make([]ObligationResponse, len(obligations))
	for i := range obligations {
		res[i] = ToObligationResponse(&obligations[i], now)
	}
	return res
}

// ToStatisticsResponse converts the domain statistics.
func ToStatisticsResponse(s domain.Statistics) StatisticsResponse {
	return StatisticsResponse{Total: s.Total, Upcoming: s.Upcoming, Due: s.Due, Overdue: s.Overdue}
}

// ToMaterializationResponse converts a materialization run's output.
func ToMaterializationResponse(obligations []domain.Obligation, ruleWarnings []domain.RuleWarning, inserted int, now time.Time) MaterializationResponse {
	warnings := make([]RuleWarningDTO, len(ruleWarnings))
	for i, w := range ruleWarnings {
		warnings[i] = RuleWarningDTO{RuleID: w.RuleID, Reason: w.Reason}
	}
	return MaterializationResponse{
		Obligations: ToListObligationResponse(obligations, now),
		Warnings:    warnings,
		Inserted:    inserted,
	}
}
