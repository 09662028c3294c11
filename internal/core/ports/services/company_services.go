package services

import (
	"context"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/fiscalia/fiscal_tracker_app/internal/dto"
)

// CompanyReaderSvc defines read operations for company profiles
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a specific company profile.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.CompanyProfile, error)

	// ListCompanies retrieves all company profiles.
	ListCompanies(ctx context.Context, activeOnly bool) ([]domain.CompanyProfile, error)
}

// CompanyWriterSvc defines write operations for company profiles
type CompanyWriterSvc interface {
	// CreateCompany persists a new company profile.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.CompanyProfile, error)

	// UpdateCompany overwrites an existing company profile.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.CompanyProfile, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
