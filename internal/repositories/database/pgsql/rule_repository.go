package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	"github.com/fiscalia/fiscal_tracker_app/internal/models"
	"github.com/fiscalia/fiscal_tracker_app/internal/utils/mapping"
	"github.com/fiscalia/fiscal_tracker_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ruleColumns = `rule_id, person_category, person_sub_category, obligation_type, tag,
		frequency, reference_period, due_day, due_month, detail, form_reference,
		link, comment, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxRuleRepository struct {
	BaseRepository
}

// newPgxRuleRepository creates a new repository for the filing-rule catalog.
func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleRepositoryWithTx {
	return &PgxRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RuleRepositoryWithTx = (*PgxRuleRepository)(nil)

// SaveRule inserts a new catalog entry.
func (r *PgxRuleRepository) SaveRule(ctx context.Context, rule domain.RuleCatalogEntry) error {
	modelRule := mapping.ToModelRule(rule)

	query := `
		INSERT INTO fiscal_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelRule.RuleID,
		modelRule.PersonCategory,
		modelRule.PersonSubCategory,
		modelRule.ObligationType,
		modelRule.Tag,
		modelRule.Frequency,
		modelRule.ReferencePeriod,
		modelRule.DueDay,
		modelRule.DueMonth,
		modelRule.Detail,
		modelRule.FormReference,
		modelRule.Link,
		modelRule.Comment,
		modelRule.IsActive,
		modelRule.CreatedAt,
		modelRule.CreatedBy,
		modelRule.LastUpdatedAt,
		modelRule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rule %s: %w", modelRule.RuleID, err)
	}
	return nil
}

// FindRuleByID retrieves a catalog entry by its ID.
func (r *PgxRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.RuleCatalogEntry, error) {
	query := `SELECT ` + ruleColumns + ` FROM fiscal_rules WHERE rule_id = $1;`

	rows, err := r.Pool.Query(ctx, query, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule %s: %w", ruleID, err)
	}

	modelRule, err := pgx.CollectOneRow(rows, scanRule)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule by id %s: %w", ruleID, err)
	}

	domainRule := mapping.ToDomainRule(modelRule)
	return &domainRule, nil
}

// ListRules retrieves one page of catalog entries, newest first. The page
// token encodes the creation time of the last entry of the previous page.
func (r *PgxRuleRepository) ListRules(ctx context.Context, activeOnly bool, limit int, nextToken string) ([]domain.RuleCatalogEntry, string, error) {
	var cursor time.Time
	if nextToken != "" {
		var err error
		cursor, err = pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	query := `SELECT ` + ruleColumns + `
		FROM fiscal_rules
		WHERE ($1::boolean IS FALSE OR is_active)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC, rule_id
		LIMIT $3;
	`

	var cursorArg any
	if !cursor.IsZero() {
		cursorArg = cursor
	}

	rows, err := r.Pool.Query(ctx, query, activeOnly, cursorArg, limit+1)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query rules: %w", err)
	}

	modelRules, err := pgx.CollectRows(rows, scanRule)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan rules: %w", err)
	}

	var next string
	if len(modelRules) > limit {
		modelRules = modelRules[:limit]
		next = pagination.EncodeDateBasedToken(modelRules[len(modelRules)-1].CreatedAt)
	}

	return mapping.ToDomainRuleSlice(modelRules), next, nil
}

// ListActiveRules retrieves the full active catalog, unpaginated.
func (r *PgxRuleRepository) ListActiveRules(ctx context.Context) ([]domain.RuleCatalogEntry, error) {
	query := `SELECT ` + ruleColumns + `
		FROM fiscal_rules
		WHERE is_active
		ORDER BY created_at DESC, rule_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active rules: %w", err)
	}

	modelRules, err := pgx.CollectRows(rows, scanRule)
	if err != nil {
		return nil, fmt.Errorf("failed to scan active rules: %w", err)
	}

	return mapping.ToDomainRuleSlice(modelRules), nil
}

// UpdateRule overwrites a catalog entry.
func (r *PgxRuleRepository) UpdateRule(ctx context.Context, rule domain.RuleCatalogEntry) error {
	modelRule := mapping.ToModelRule(rule)

	query := `
		UPDATE fiscal_rules SET
			person_category = $2,
			person_sub_category = $3,
			obligation_type = $4,
			tag = $5,
			frequency = $6,
			reference_period = $7,
			due_day = $8,
			due_month = $9,
			detail = $10,
			form_reference = $11,
			link = $12,
			comment = $13,
			last_updated_at = $14,
			last_updated_by = $15
		WHERE rule_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelRule.RuleID,
		modelRule.PersonCategory,
		modelRule.PersonSubCategory,
		modelRule.ObligationType,
		modelRule.Tag,
		modelRule.Frequency,
		modelRule.ReferencePeriod,
		modelRule.DueDay,
		modelRule.DueMonth,
		modelRule.Detail,
		modelRule.FormReference,
		modelRule.Link,
		modelRule.Comment,
		modelRule.LastUpdatedAt,
		modelRule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule %s: %w", modelRule.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateRule soft-deletes a catalog entry.
func (r *PgxRuleRepository) DeactivateRule(ctx context.Context, ruleID string, deactivatedBy string) error {
	query := `
		UPDATE fiscal_rules SET
			is_active = FALSE,
			last_updated_at = NOW(),
			last_updated_by = $2
		WHERE rule_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query, ruleID, deactivatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanRule(row pgx.CollectableRow) (models.RuleCatalogEntry, error) {
	var rule models.RuleCatalogEntry
	err := row.Scan(
		&rule.RuleID,
		&rule.PersonCategory,
		&rule.PersonSubCategory,
		&rule.ObligationType,
		&rule.Tag,
		&rule.Frequency,
		&rule.ReferencePeriod,
		&rule.DueDay,
		&rule.DueMonth,
		&rule.Detail,
		&rule.FormReference,
		&rule.Link,
		&rule.Comment,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.CreatedBy,
		&rule.LastUpdatedAt,
		&rule.LastUpdatedBy,
	)
	return rule, err
}
