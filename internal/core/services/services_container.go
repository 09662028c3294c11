package services

import (
	portsrepo "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rule = NewRuleService(repos.RuleRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Obligation = NewObligationService(repos.ObligationRepo, repos.RuleRepo, repos.CompanyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RuleSvcFacade       = (*ruleService)(nil)
	_ portssvc.CompanySvcFacade    = (*companyService)(nil)
	_ portssvc.ObligationSvcFacade = (*obligationService)(nil)
)
