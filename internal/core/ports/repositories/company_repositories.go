package repositories

import (
	"context"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// CompanyReader defines read operations for company profiles
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.CompanyProfile, error)

	// ListCompanies retrieves all companies, ordered by name.
	ListCompanies(ctx context.Context, activeOnly bool) ([]domain.CompanyProfile, error)
}

// CompanyWriter defines write operations for company profiles
type CompanyWriter interface {
	// SaveCompany persists a new company profile.
	SaveCompany(ctx context.Context, company domain.CompanyProfile) error

	// UpdateCompany overwrites an existing company profile.
	UpdateCompany(ctx context.Context, company domain.CompanyProfile) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

// CompanyRepositoryWithTx extends CompanyRepositoryFacade with transaction capabilities
type CompanyRepositoryWithTx interface {
	CompanyRepositoryFacade
	TransactionManager
}
