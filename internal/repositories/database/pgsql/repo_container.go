package pgsql

import (
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ruleRepo := newPgxRuleRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	obligationRepo := newPgxObligationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RuleRepo:       ruleRepo,
		CompanyRepo:    companyRepo,
		ObligationRepo: obligationRepo,
	}
}
