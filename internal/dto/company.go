package dto

import (
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a company.
type CreateCompanyRequest struct {
	Name              string `json:"name" binding:"required"`
	PersonCategory    string `json:"personCategory" binding:"required,oneof=LEGAL_ENTITY NATURAL_PERSON"`
	PersonSubCategory string `json:"personSubCategory"`
	VATSubject        bool   `json:"vatSubject"`
	VATRegime         string `json:"vatRegime"`
	ProRataDeduction  bool   `json:"proRataDeduction"`
}

// UpdateCompanyRequest overwrites a company's profile attributes.
type UpdateCompanyRequest struct {
	Name              string `json:"name" binding:"required"`
	PersonCategory    string `json:"personCategory" binding:"required,oneof=LEGAL_ENTITY NATURAL_PERSON"`
	PersonSubCategory string `json:"personSubCategory"`
	VATSubject        bool   `json:"vatSubject"`
	VATRegime         string `json:"vatRegime"`
	ProRataDeduction  bool   `json:"proRataDeduction"`
}

// CompanyResponse defines the data returned for a company profile.
type CompanyResponse struct {
	CompanyID         string    `json:"companyID"`
	Name              string    `json:"name"`
	PersonCategory    string    `json:"personCategory"`
	PersonSubCategory string    `json:"personSubCategory,omitempty"`
	VATSubject        bool      `json:"vatSubject"`
	VATRegime         string    `json:"vatRegime,omitempty"`
	ProRataDeduction  bool      `json:"proRataDeduction"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain CompanyProfile to its response DTO
func ToCompanyResponse(c *domain.CompanyProfile) CompanyResponse {
	return CompanyResponse{
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		PersonCategory:    string(c.PersonCategory),
		PersonSubCategory: c.PersonSubCategory,
		VATSubject:        c.VATSubject,
		VATRegime:         c.VATRegime,
		ProRataDeduction:  c.ProRataDeduction,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		LastUpdatedAt:     c.LastUpdatedAt,
	}
}

// ToListCompanyResponse converts a slice of domain profiles to response DTOs
func ToListCompanyResponse(companies []domain.CompanyProfile) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return res
}
