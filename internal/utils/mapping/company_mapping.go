package mapping

import (
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/fiscalia/fiscal_tracker_app/internal/models"
)

// ToModelCompany converts a domain CompanyProfile to its model
func ToModelCompany(d domain.CompanyProfile) models.Company {
	return models.Company{
		CompanyID:         d.CompanyID,
		Name:              d.Name,
		PersonCategory:    string(d.PersonCategory),
		PersonSubCategory: d.PersonSubCategory,
		VATSubject:        d.VATSubject,
		VATRegime:         d.VATRegime,
		ProRataDeduction:  d.ProRataDeduction,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to its domain form
func ToDomainCompany(m models.Company) domain.CompanyProfile {
	return domain.CompanyProfile{
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		PersonCategory:    domain.PersonCategory(m.PersonCategory),
		PersonSubCategory: m.PersonSubCategory,
		VATSubject:        m.VATSubject,
		VATRegime:         m.VATRegime,
		ProRataDeduction:  m.ProRataDeduction,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model companies to domain profiles
func ToDomainCompanySlice(ms []models.Company) []domain.CompanyProfile {
	ds := make([]domain.CompanyProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
