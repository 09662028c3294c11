package repositories

import (
	"context"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// RuleReader defines read operations for the filing-rule catalog
type RuleReader interface {
	// FindRuleByID retrieves a specific catalog entry by its ID.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.RuleCatalogEntry, error)

	// ListRules retrieves catalog entries ordered by creation time, newest
	// first. A non-empty nextToken resumes a previous page. activeOnly
	// restricts the page to entries that have not been deactivated.
	ListRules(ctx context.Context, activeOnly bool, limit int, nextToken string) ([]domain.RuleCatalogEntry, string, error)

	// ListActiveRules retrieves every active catalog entry, unpaginated.
	// Used by obligation materialization, which needs the full catalog.
	ListActiveRules(ctx context.Context) ([]domain.RuleCatalogEntry, error)
}

// RuleWriter defines write operations for the filing-rule catalog
type RuleWriter interface {
	// SaveRule persists a new catalog entry.
	SaveRule(ctx context.Context, rule domain.RuleCatalogEntry) error

	// UpdateRule overwrites an existing catalog entry. The edit supersedes
	// the row; obligations already derived from it are snapshots and keep
	// their original text and dates.
	UpdateRule(ctx context.Context, rule domain.RuleCatalogEntry) error

	// DeactivateRule soft-deletes a catalog entry.
	DeactivateRule(ctx context.Context, ruleID string, deactivatedBy string) error
}

// RuleRepositoryFacade combines all rule-related repository interfaces
type RuleRepositoryFacade interface {
	RuleReader
	RuleWriter
}

// RuleRepositoryWithTx extends RuleRepositoryFacade with transaction capabilities
type RuleRepositoryWithTx interface {
	RuleRepositoryFacade
	TransactionManager
}
