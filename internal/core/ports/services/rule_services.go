package services

import (
	"context"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/fiscalia/fiscal_tracker_app/internal/dto"
)

// RuleReaderSvc defines read operations for the filing-rule catalog
type RuleReaderSvc interface {
	// GetRuleByID retrieves a specific catalog entry.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.RuleCatalogEntry, error)

	// ListRules retrieves a page of catalog entries plus the token for the
	// next page (empty when exhausted).
	ListRules(ctx context.Context, activeOnly bool, limit int, nextToken string) ([]domain.RuleCatalogEntry, string, error)
}

// RuleWriterSvc defines write operations for the filing-rule catalog
type RuleWriterSvc interface {
	// CreateRule persists a new catalog entry.
	CreateRule(ctx context.Context, req dto.CreateRuleRequest, creatorUserID string) (*domain.RuleCatalogEntry, error)

	// UpdateRule supersedes an existing catalog entry with edited fields.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, updaterUserID string) (*domain.RuleCatalogEntry, error)

	// DeactivateRule soft-deletes a catalog entry.
	DeactivateRule(ctx context.Context, ruleID string, updaterUserID string) error
}

// RuleSvcFacade combines all rule-related service interfaces
type RuleSvcFacade interface {
	RuleReaderSvc
	RuleWriterSvc
}
