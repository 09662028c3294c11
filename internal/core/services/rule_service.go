package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
	"github.com/fiscalia/fiscal_tracker_app/internal/dto"
	"github.com/google/uuid"
)

const defaultRulePageSize = 50

type ruleService struct {
	ruleRepo portsrepo.RuleRepositoryFacade
}

// NewRuleService creates the catalog service backed by the given repository.
func NewRuleService(ruleRepo portsrepo.RuleRepositoryFacade) portssvc.RuleSvcFacade {
	return &ruleService{ruleRepo: ruleRepo}
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

func (s *ruleService) CreateRule(ctx context.Context, req dto.CreateRuleRequest, creatorUserID string) (*domain.RuleCatalogEntry, error) {
	now := time.Now()

	rule := domain.RuleCatalogEntry{
		RuleID:            uuid.NewString(),
		PersonCategory:    domain.PersonCategory(req.PersonCategory),
		PersonSubCategory: req.PersonSubCategory,
		ObligationType:    req.ObligationType,
		Tag:               req.Tag,
		Frequency:         domain.Frequency(req.Frequency),
		ReferencePeriod:   req.ReferencePeriod,
		DueDay:            req.DueDay,
		DueMonth:          req.DueMonth,
		Detail:            req.Detail,
		FormReference:     req.FormReference,
		Link:              req.Link,
		Comment:           req.Comment,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create rule in service: %w", err)
	}

	return &rule, nil
}

func (s *ruleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.RuleCatalogEntry, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule %s in service: %w", ruleID, err)
	}
	return rule, nil
}

func (s *ruleService) ListRules(ctx context.Context, activeOnly bool, limit int, nextToken string) ([]domain.RuleCatalogEntry, string, error) {
	if limit <= 0 {
		limit = defaultRulePageSize
	}
	rules, next, err := s.ruleRepo.ListRules(ctx, activeOnly, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list rules in service: %w", err)
	}
	if rules == nil {
		rules = []domain.RuleCatalogEntry{}
	}
	return rules, next, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, updaterUserID string) (*domain.RuleCatalogEntry, error) {
	existing, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule %s for update: %w", ruleID, err)
	}

	// The edit supersedes the stored entry wholesale; derived obligations
	// are snapshots and keep their original text and dates.
	updated := *existing
	updated.PersonCategory = domain.PersonCategory(req.PersonCategory)
	updated.PersonSubCategory = req.PersonSubCategory
	updated.ObligationType = req.ObligationType
	updated.Tag = req.Tag
	updated.Frequency = domain.Frequency(req.Frequency)
	updated.ReferencePeriod = req.ReferencePeriod
	updated.DueDay = req.DueDay
	updated.DueMonth = req.DueMonth
	updated.Detail = req.Detail
	updated.FormReference = req.FormReference
	updated.Link = req.Link
	updated.Comment = req.Comment
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.ruleRepo.UpdateRule(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update rule %s in service: %w", ruleID, err)
	}

	return &updated, nil
}

func (s *ruleService) DeactivateRule(ctx context.Context, ruleID string, updaterUserID string) error {
	if err := s.ruleRepo.DeactivateRule(ctx, ruleID, updaterUserID); err != nil {
		return fmt.Errorf("failed to deactivate rule %s in service: %w", ruleID, err)
	}
	return nil
}
