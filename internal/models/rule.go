package models

// Frequency mirrors the domain enum at the persistence boundary.
type Frequency string

// RuleCatalogEntry is the database representation of a declarative filing rule.
type RuleCatalogEntry struct {
	RuleID            string    `db:"rule_id"`
	PersonCategory    string    `db:"person_category"`
	PersonSubCategory string    `db:"person_sub_category"` // Empty string stands for "all sub-categories"
	ObligationType    string    `db:"obligation_type"`
	Tag               string    `db:"tag"`
	Frequency         Frequency `db:"frequency"`
	ReferencePeriod   string    `db:"reference_period"`
	DueDay            int       `db:"due_day"`
	DueMonth          int       `db:"due_month"`
	Detail            string    `db:"detail"`
	FormReference     string    `db:"form_reference"`
	Link              string    `db:"link"`
	Comment           string    `db:"comment"`
	IsActive          bool      `db:"is_active"`
	AuditFields
}
