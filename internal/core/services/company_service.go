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

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company profile service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.CompanyProfile, error) {
	now := time.Now()

	company := domain.CompanyProfile{
		CompanyID:         uuid.NewString(),
		Name:              req.Name,
		PersonCategory:    domain.PersonCategory(req.PersonCategory),
		PersonSubCategory: req.PersonSubCategory,
		VATSubject:        req.VATSubject,
		VATRegime:         req.VATRegime,
		ProRataDeduction:  req.ProRataDeduction,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company in service: %w", err)
	}

	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s in service: %w", companyID, err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.CompanyProfile, error) {
	companies, err := s.companyRepo.ListCompanies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies in service: %w", err)
	}
	if companies == nil {
		return []domain.CompanyProfile{}, nil
	}
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.CompanyProfile, error) {
	existing, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s for update: %w", companyID, err)
	}

	updated := *existing
	updated.Name = req.Name
	updated.PersonCategory = domain.PersonCategory(req.PersonCategory)
	updated.PersonSubCategory = req.PersonSubCategory
	updated.VATSubject = req.VATSubject
	updated.VATRegime = req.VATRegime
	updated.ProRataDeduction = req.ProRataDeduction
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.companyRepo.UpdateCompany(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update company %s in service: %w", companyID, err)
	}

	return &updated, nil
}
