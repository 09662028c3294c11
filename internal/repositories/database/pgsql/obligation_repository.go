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

const obligationColumns = `obligation_id, company_id, source_rule_id, obligation_type, title,
		description, period_label, due_date, workflow_status, priority, amount,
		currency_code, created_at, created_by, last_updated_at, last_updated_by`

type PgxObligationRepository struct {
	BaseRepository
}

// newPgxObligationRepository creates a new repository for derived obligations.
func newPgxObligationRepository(pool *pgxpool.Pool) portsrepo.ObligationRepositoryWithTx {
	return &PgxObligationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ObligationRepositoryWithTx = (*PgxObligationRepository)(nil)

// UpsertObligations inserts freshly derived obligations inside a single
// transaction. The obligation ID is deterministic, so a row that already
// exists means the occurrence was materialized before; DO NOTHING keeps
// whatever workflow state users have set on it since.
func (r *PgxObligationRepository) UpsertObligations(ctx context.Context, obligations []domain.Obligation) (int, error) {
	if len(obligations) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO obligations (` + obligationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (obligation_id) DO NOTHING;
	`

	inserted := 0
	for _, obligation := range obligations {
		m := mapping.ToModelObligation(obligation)
		tag, err := tx.Exec(ctx, query,
			m.ObligationID,
			m.CompanyID,
			m.SourceRuleID,
			m.ObligationType,
			m.Title,
			m.Description,
			m.PeriodLabel,
			m.DueDate,
			m.WorkflowStatus,
			m.Priority,
			m.Amount,
			m.CurrencyCode,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert obligation %s: %w", m.ObligationID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// FindObligationByID retrieves a single obligation.
func (r *PgxObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE obligation_id = $1;`

	rows, err := r.Pool.Query(ctx, query, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligation %s: %w", obligationID, err)
	}

	modelObligation, err := pgx.CollectOneRow(rows, scanObligation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find obligation by id %s: %w", obligationID, err)
	}

	domainObligation := mapping.ToDomainObligation(modelObligation)
	return &domainObligation, nil
}

// FindObligationsByCompany retrieves a company's obligations, optionally
// restricted to those due in one year. The ordering mirrors the engine's:
// due date ascending, obligation ID as tie-break.
func (r *PgxObligationRepository) FindObligationsByCompany(ctx context.Context, companyID string, year int) ([]domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + `
		FROM obligations
		WHERE company_id = $1
		  AND ($2::int = 0 OR EXTRACT(YEAR FROM due_date)::int = $2)
		ORDER BY due_date, obligation_id;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligations for company %s: %w", companyID, err)
	}

	modelObligations, err := pgx.CollectRows(rows, scanObligation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan obligations for company %s: %w", companyID, err)
	}

	return mapping.ToDomainObligationSlice(modelObligations), nil
}

// UpdateObligationWorkflow persists the mutable workflow fields.
func (r *PgxObligationRepository) UpdateObligationWorkflow(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	query := `
		UPDATE obligations SET
			workflow_status = $2,
			priority = $3,
			amount = $4,
			currency_code = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE obligation_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.ObligationID,
		m.WorkflowStatus,
		m.Priority,
		m.Amount,
		m.CurrencyCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update obligation %s: %w", m.ObligationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanObligation(row pgx.CollectableRow) (models.Obligation, error) {
	var obligation models.Obligation
	err := row.Scan(
		&obligation.ObligationID,
		&obligation.CompanyID,
		&obligation.SourceRuleID,
		&obligation.ObligationType,
		&obligation.Title,
		&obligation.Description,
		&obligation.PeriodLabel,
		&obligation.DueDate,
		&obligation.WorkflowStatus,
		&obligation.Priority,
		&obligation.Amount,
		&obligation.CurrencyCode,
		&obligation.CreatedAt,
		&obligation.CreatedBy,
		&obligation.LastUpdatedAt,
		&obligation.LastUpdatedBy,
	)
	return obligation, err
}
