package domain

// Frequency defines how often a filing rule recurs within a calendar year.
type Frequency string

const (
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyAnnual    Frequency = "ANNUAL"
)

// IsValid reports whether f is one of the recognized frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual:
		return true
	}
	return false
}

// PersonCategory is the taxpayer classification that selects which catalog
// rules apply to a company.
type PersonCategory string

const (
	LegalEntity   PersonCategory = "LEGAL_ENTITY"
	NaturalPerson PersonCategory = "NATURAL_PERSON"
)

// IsValid reports whether c is one of the recognized taxpayer categories.
func (c PersonCategory) IsValid() bool {
	switch c {
	case LegalEntity, NaturalPerson:
		return true
	}
	return false
}

// RuleCatalogEntry is an administrator-maintained declarative filing rule.
// Entries are immutable once created; an edit supersedes the row, it never
// retroactively alters obligations already derived from it.
type RuleCatalogEntry struct {
	RuleID            string         `json:"ruleID"`            // Primary Key (e.g., UUID)
	PersonCategory    PersonCategory `json:"personCategory"`    // Taxpayer category this rule targets
	PersonSubCategory string         `json:"personSubCategory"` // Optional refinement; empty means all sub-categories
	ObligationType    string         `json:"obligationType"`    // Statutory instrument (VAT, corporate income tax, ...)
	Tag               string         `json:"tag"`               // Short code used for display and color-coding
	Frequency         Frequency      `json:"frequency"`         // MONTHLY, QUARTERLY or ANNUAL
	ReferencePeriod   string         `json:"referencePeriod"`   // Optional sub-period label (e.g., "Q4", "previous year")
	DueDay            int            `json:"dueDay"`            // Day-of-month 1-31; clamped to month length at instantiation
	DueMonth          int            `json:"dueMonth"`          // Anchor month; within-quarter offset for QUARTERLY rules
	Detail            string         `json:"detail"`            // Descriptive, non-computational
	FormReference     string         `json:"formReference"`     // Official form number, if any
	Link              string         `json:"link"`              // External documentation link
	Comment           string         `json:"comment"`           // Free-form administrator note
	IsActive          bool           `json:"isActive"`          // Soft delete flag
	AuditFields                      // Embed CreatedAt, CreatedBy, etc.
}

// AppliesTo reports whether this rule selects the given company.
// An empty sub-category on the rule applies to every sub-category of the
// matching person category.
func (r RuleCatalogEntry) AppliesTo(company CompanyProfile) bool {
	if r.PersonCategory != company.PersonCategory {
		return false
	}
	if r.PersonSubCategory != "" && r.PersonSubCategory != company.PersonSubCategory {
		return false
	}
	return true
}
