package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	"github.com/fiscalia/fiscal_tracker_app/internal/models"
	"github.com/fiscalia/fiscal_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `company_id, name, person_category, person_sub_category, vat_subject,
		vat_regime, pro_rata_deduction, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company profiles.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryWithTx {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryWithTx = (*PgxCompanyRepository)(nil)

// SaveCompany inserts a new company profile.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.CompanyProfile) error {
	modelCompany := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.PersonCategory,
		modelCompany.PersonSubCategory,
		modelCompany.VATSubject,
		modelCompany.VATRegime,
		modelCompany.ProRataDeduction,
		modelCompany.IsActive,
		modelCompany.CreatedAt,
		modelCompany.CreatedBy,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company %s: %w", modelCompany.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company profile by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company %s: %w", companyID, err)
	}

	modelCompany, err := pgx.CollectOneRow(rows, scanCompany)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by id %s: %w", companyID, err)
	}

	domainCompany := mapping.ToDomainCompany(modelCompany)
	return &domainCompany, nil
}

// ListCompanies retrieves all companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + `
		FROM companies
		WHERE ($1::boolean IS FALSE OR is_active)
		ORDER BY name, company_id;
	`

	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}

	modelCompanies, err := pgx.CollectRows(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// UpdateCompany overwrites a company profile.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.CompanyProfile) error {
	modelCompany := mapping.ToModelCompany(company)

	query := `
		UPDATE companies SET
			name = $2,
			person_category = $3,
			person_sub_category = $4,
			vat_subject = $5,
			vat_regime = $6,
			pro_rata_deduction = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE company_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.PersonCategory,
		modelCompany.PersonSubCategory,
		modelCompany.VATSubject,
		modelCompany.VATRegime,
		modelCompany.ProRataDeduction,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", modelCompany.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.CollectableRow) (models.Company, error) {
	var company models.Company
	err := row.Scan(
		&company.CompanyID,
		&company.Name,
		&company.PersonCategory,
		&company.PersonSubCategory,
		&company.VATSubject,
		&company.VATRegime,
		&company.ProRataDeduction,
		&company.IsActive,
		&company.CreatedAt,
		&company.CreatedBy,
		&company.LastUpdatedAt,
		&company.LastUpdatedBy,
	)
	return company, err
}
