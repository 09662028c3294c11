package services

import (
	"context"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// MaterializationResult is what a year materialization run produced: the
// obligations now on the calendar for that year, the catalog entries that
// had to be skipped, and how many rows were newly inserted (existing rows
// keep their user-set workflow state).
type MaterializationResult struct {
	Obligations []domain.Obligation  `json:"obligations"`
	Warnings    []domain.RuleWarning `json:"warnings"`
	Inserted    int                  `json:"inserted"`
}

// ObligationMaterializerSvc derives the fiscal calendar of a company.
type ObligationMaterializerSvc interface {
	// MaterializeYear expands the active rule catalog into dated
	// obligations for one company and year, and persists the new ones.
	// Safe to re-run: the derivation is deterministic and existing rows win.
	MaterializeYear(ctx context.Context, companyID string, year int, requestedBy string) (*MaterializationResult, error)
}

// ObligationReaderSvc defines read operations over a company's obligations
type ObligationReaderSvc interface {
	// GetObligationByID retrieves a single obligation.
	GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves a company's obligations narrowed by the
	// given criteria; temporal status is evaluated against now.
	ListObligations(ctx context.Context, companyID string, criteria domain.FilterCriteria, now time.Time) ([]domain.Obligation, error)

	// GetStatistics returns the temporal partition counts for a company.
	GetStatistics(ctx context.Context, companyID string, now time.Time) (domain.Statistics, error)

	// GetPeriodView returns the company's obligations due in the given
	// year and optional month / ISO week / day drill-down.
	GetPeriodView(ctx context.Context, companyID string, year, month, week, day int) ([]domain.Obligation, error)
}

// ObligationWorkflowSvc applies user-initiated workflow transitions.
type ObligationWorkflowSvc interface {
	// SetStatus overwrites the workflow status and persists the change.
	SetStatus(ctx context.Context, obligationID string, status domain.WorkflowStatus, updatedBy string) (*domain.Obligation, error)

	// CyclePriority bumps the priority one step (wrapping) and persists it.
	CyclePriority(ctx context.Context, obligationID string, updatedBy string) (*domain.Obligation, error)

	// ToggleCompletion flips between pending and completed and persists it.
	ToggleCompletion(ctx context.Context, obligationID string, updatedBy string) (*domain.Obligation, error)
}

// ObligationSvcFacade combines all obligation-related service interfaces
type ObligationSvcFacade interface {
	ObligationMaterializerSvc
	ObligationReaderSvc
	ObligationWorkflowSvc
}
