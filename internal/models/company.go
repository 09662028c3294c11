package models

// Company is the database representation of a taxpayer profile.
type Company struct {
	CompanyID         string `db:"company_id"`
	Name              string `db:"name"`
	PersonCategory    string `db:"person_category"`
	PersonSubCategory string `db:"person_sub_category"`
	VATSubject        bool   `db:"vat_subject"`
	VATRegime         string `db:"vat_regime"`
	ProRataDeduction  bool   `db:"pro_rata_deduction"`
	IsActive          bool   `db:"is_active"`
	AuditFields
}
