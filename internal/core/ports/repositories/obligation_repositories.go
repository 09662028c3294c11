package repositories

import (
	"context"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// ObligationReader defines read operations for derived obligations
type ObligationReader interface {
	// FindObligationByID retrieves a single obligation.
	FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)

	// FindObligationsByCompany retrieves every obligation of a company,
	// optionally restricted to obligations due in the given year (year 0
	// means all years). Ordered by due date ascending, ID as tie-break.
	FindObligationsByCompany(ctx context.Context, companyID string, year int) ([]domain.Obligation, error)
}

// ObligationWriter defines write operations for derived obligations
type ObligationWriter interface {
	// UpsertObligations inserts freshly derived obligations. Rows whose
	// deterministic ID already exists are left untouched, so workflow
	// status and priority set by users survive re-materialization. Returns
	// the number of rows actually inserted.
	UpsertObligations(ctx context.Context, obligations []domain.Obligation) (int, error)

	// UpdateObligationWorkflow persists workflow status, priority and the
	// last-edited stamp of a mutated obligation.
	UpdateObligationWorkflow(ctx context.Context, obligation domain.Obligation) error
}

// ObligationRepositoryFacade combines all obligation-related repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}

// ObligationRepositoryWithTx extends ObligationRepositoryFacade with transaction capabilities
type ObligationRepositoryWithTx interface {
	ObligationRepositoryFacade
	TransactionManager
}
