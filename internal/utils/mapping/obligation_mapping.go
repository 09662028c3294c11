package mapping

import (
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/fiscalia/fiscal_tracker_app/internal/models"
)

// ToModelObligation converts a domain Obligation to its model
func ToModelObligation(d domain.Obligation) models.Obligation {
	return models.Obligation{
		ObligationID:   d.ObligationID,
		CompanyID:      d.CompanyID,
		SourceRuleID:   d.SourceRuleID,
		ObligationType: d.ObligationType,
		Title:          d.Title,
		Description:    d.Description,
		PeriodLabel:    d.PeriodLabel,
		DueDate:        d.DueDate,
		WorkflowStatus: string(d.WorkflowStatus),
		Priority:       string(d.Priority),
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainObligation converts a model Obligation to its domain form
func ToDomainObligation(m models.Obligation) domain.Obligation {
	return domain.Obligation{
		ObligationID:   m.ObligationID,
		CompanyID:      m.CompanyID,
		SourceRuleID:   m.SourceRuleID,
		ObligationType: m.ObligationType,
		Title:          m.Title,
		Description:    m.Description,
		PeriodLabel:    m.PeriodLabel,
		DueDate:        m.DueDate,
		WorkflowStatus: domain.WorkflowStatus(m.WorkflowStatus),
		Priority:       domain.Priority(m.Priority),
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainObligationSlice converts a slice of model obligations to domain form
func ToDomainObligationSlice(ms []models.Obligation) []domain.Obligation {
	ds := make([]domain.Obligation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainObligation(m)
	}
	return ds
}
