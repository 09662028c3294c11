package domain

// CompanyProfile holds the taxpayer classification attributes that select
// which catalog rules apply to a company. The tax-regime flags are carried
// for future matching rules but are opaque to the derivation engine today.
type CompanyProfile struct {
	CompanyID         string         `json:"companyID"`         // Primary Key (e.g., UUID)
	Name              string         `json:"name"`              // Legal name
	PersonCategory    PersonCategory `json:"personCategory"`    // Must be one of the enumerated categories
	PersonSubCategory string         `json:"personSubCategory"` // Optional refinement
	VATSubject        bool           `json:"vatSubject"`        // Whether the company is VAT-registered
	VATRegime         string         `json:"vatRegime"`         // Jurisdiction-specific regime label
	ProRataDeduction  bool           `json:"proRataDeduction"`  // Partial VAT deduction flag
	IsActive          bool           `json:"isActive"`          // Soft delete flag
	AuditFields                      // Embed common audit fields
}
