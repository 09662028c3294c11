package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
)

type obligationService struct {
	obligationRepo portsrepo.ObligationRepositoryFacade
	ruleRepo       portsrepo.RuleReader
	companyRepo    portsrepo.CompanyReader
}

// NewObligationService creates the obligation service. It owns the calls
// into the pure derivation engine; all I/O stays on this side of the line.
func NewObligationService(
	obligationRepo portsrepo.ObligationRepositoryFacade,
	ruleRepo portsrepo.RuleReader,
	companyRepo portsrepo.CompanyReader,
) portssvc.ObligationSvcFacade {
	return &obligationService{
		obligationRepo: obligationRepo,
		ruleRepo:       ruleRepo,
		companyRepo:    companyRepo,
	}
}

var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

func (s *obligationService) MaterializeYear(ctx context.Context, companyID string, year int, requestedBy string) (*portssvc.MaterializationResult, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s for materialization: %w", companyID, err)
	}

	rules, err := s.ruleRepo.ListActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule catalog for materialization: %w", err)
	}

	derived, warnings := domain.Instantiate(rules, *company, year, time.Now())
	for i := range derived {
		derived[i].CreatedBy = requestedBy
		derived[i].LastUpdatedBy = requestedBy
	}

	inserted, err := s.obligationRepo.UpsertObligations(ctx, derived)
	if err != nil {
		return nil, fmt.Errorf("failed to persist materialized obligations for company %s: %w", companyID, err)
	}

	// Re-read the stored year so the caller sees persisted workflow state
	// for occurrences that already existed.
	stored, err := s.obligationRepo.FindObligationsByCompany(ctx, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to reload obligations for company %s: %w", companyID, err)
	}

	return &portssvc.MaterializationResult{
		Obligations: stored,
		Warnings:    warnings,
		Inserted:    inserted,
	}, nil
}

func (s *obligationService) GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get obligation %s in service: %w", obligationID, err)
	}
	return obligation, nil
}

func (s *obligationService) ListObligations(ctx context.Context, companyID string, criteria domain.FilterCriteria, now time.Time) ([]domain.Obligation, error) {
	obligations, err := s.obligationRepo.FindObligationsByCompany(ctx, companyID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations for company %s: %w", companyID, err)
	}

	criteria.CompanyID = companyID
	filtered, err := domain.Filter(obligations, criteria, now)
	if err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *obligationService) GetStatistics(ctx context.Context, companyID string, now time.Time) (domain.Statistics, error) {
	obligations, err := s.obligationRepo.FindObligationsByCompany(ctx, companyID, 0)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("failed to load obligations for company %s: %w", companyID, err)
	}
	return domain.Summarize(obligations, now), nil
}

func (s *obligationService) GetPeriodView(ctx context.Context, companyID string, year, month, week, day int) ([]domain.Obligation, error) {
	obligations, err := s.obligationRepo.FindObligationsByCompany(ctx, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations for company %s: %w", companyID, err)
	}
	return domain.ForPeriod(obligations, year, month, week, day)
}

func (s *obligationService) SetStatus(ctx context.Context, obligationID string, status domain.WorkflowStatus, updatedBy string) (*domain.Obligation, error) {
	return s.mutate(ctx, obligationID, updatedBy, func(o *domain.Obligation, now time.Time) error {
		return domain.SetStatus(o, status, now)
	})
}

func (s *obligationService) CyclePriority(ctx context.Context, obligationID string, updatedBy string) (*domain.Obligation, error) {
	return s.mutate(ctx, obligationID, updatedBy, domain.CyclePriority)
}

func (s *obligationService) ToggleCompletion(ctx context.Context, obligationID string, updatedBy string) (*domain.Obligation, error) {
	return s.mutate(ctx, obligationID, updatedBy, func(o *domain.Obligation, now time.Time) error {
		domain.ToggleCompletion(o, now)
		return nil
	})
}

// mutate loads an obligation, applies a workflow mutation from the engine
// and persists the result. The mutation itself never touches storage.
func (s *obligationService) mutate(ctx context.Context, obligationID, updatedBy string, fn func(*domain.Obligation, time.Time) error) (*domain.Obligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligation %s for mutation: %w", obligationID, err)
	}

	if err := fn(obligation, time.Now()); err != nil {
		return nil, err
	}
	obligation.LastUpdatedBy = updatedBy

	if err := s.obligationRepo.UpdateObligationWorkflow(ctx, *obligation); err != nil {
		return nil, fmt.Errorf("failed to persist obligation %s mutation: %w", obligationID, err)
	}

	return obligation, nil
}
