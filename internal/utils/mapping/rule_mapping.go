package mapping

import (
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/fiscalia/fiscal_tracker_app/internal/models"
)

// ToModelRule converts a domain RuleCatalogEntry to its model
func ToModelRule(d domain.RuleCatalogEntry) models.RuleCatalogEntry {
	return models.RuleCatalogEntry{
		RuleID:            d.RuleID,
		PersonCategory:    string(d.PersonCategory),
		PersonSubCategory: d.PersonSubCategory,
		ObligationType:    d.ObligationType,
		Tag:               d.Tag,
		Frequency:         models.Frequency(d.Frequency),
		ReferencePeriod:   d.ReferencePeriod,
		DueDay:            d.DueDay,
		DueMonth:          d.DueMonth,
		Detail:            d.Detail,
		FormReference:     d.FormReference,
		Link:              d.Link,
		Comment:           d.Comment,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRule converts a model RuleCatalogEntry to its domain form
func ToDomainRule(m models.RuleCatalogEntry) domain.RuleCatalogEntry {
	return domain.RuleCatalogEntry{
		RuleID:            m.RuleID,
		PersonCategory:    domain.PersonCategory(m.PersonCategory),
		PersonSubCategory: m.PersonSubCategory,
		ObligationType:    m.ObligationType,
		Tag:               m.Tag,
		Frequency:         domain.Frequency(m.Frequency),
		ReferencePeriod:   m.ReferencePeriod,
		DueDay:            m.DueDay,
		DueMonth:          m.DueMonth,
		Detail:            m.Detail,
		FormReference:     m.FormReference,
		Link:              m.Link,
		Comment:           m.Comment,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRuleSlice converts a slice of model rules to domain rules
func ToDomainRuleSlice(ms []models.RuleCatalogEntry) []domain.RuleCatalogEntry {
	ds := make([]domain.RuleCatalogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRule(m)
	}
	return ds
}
