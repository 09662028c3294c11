package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// obligationNamespace seeds the deterministic obligation IDs. Changing it
// would re-key every derived obligation, so it is fixed for the lifetime of
// the stored data.
var obligationNamespace = uuid.MustParse("9f2c1b48-7c53-4c8e-b1a4-d5ff30a1c2de")

// RuleWarning reports a catalog entry that was skipped during instantiation
// because its schedule fields could not produce a valid date. One bad entry
// never aborts the batch.
type RuleWarning struct {
	RuleID string `json:"ruleID"`
	Reason string `json:"reason"`
}

// ObligationID derives the stable identifier for one occurrence of a rule
// applied to a company in a target year. Repeated instantiation with the
// same inputs yields the same ID, which is what makes re-materialization
// idempotent.
func ObligationID(companyID, ruleID string, year, occurrence int) string {
	key := fmt.Sprintf("%s|%s|%d|%d", companyID, ruleID, year, occurrence)
	return uuid.NewSHA1(obligationNamespace, []byte(key)).String()
}

// Instantiate expands the applicable catalog rules into dated obligations
// for one company and one target year. Inactive rules and rules whose
// person category does not select the company are skipped silently; rules
// with malformed schedule fields are skipped with a warning.
//
// New obligations start as PENDING with MEDIUM priority. Previously
// persisted workflow state takes precedence at the store (the caller upserts
// with existing rows winning), not here.
func Instantiate(rules []RuleCatalogEntry, company CompanyProfile, year int, now time.Time) ([]Obligation, []RuleWarning) {
	var obligations []Obligation
	var warnings []RuleWarning

	for _, rule := range rules {
		if !rule.IsActive || !rule.AppliesTo(company) {
			continue
		}

		months, err := occurrenceMonths(rule)
		if err != nil {
			warnings = append(warnings, RuleWarning{RuleID: rule.RuleID, Reason: err.Error()})
			continue
		}
		if rule.DueDay < 1 || rule.DueDay > 31 {
			warnings = append(warnings, RuleWarning{RuleID: rule.RuleID, Reason: fmt.Sprintf("due day %d outside 1-31", rule.DueDay)})
			continue
		}

		for i, month := range months {
			dueDate := clampedDate(year, month, rule.DueDay)
			obligations = append(obligations, Obligation{
				ObligationID:   ObligationID(company.CompanyID, rule.RuleID, year, i),
				CompanyID:      company.CompanyID,
				SourceRuleID:   rule.RuleID,
				ObligationType: rule.ObligationType,
				Title:          rule.ObligationType,
				Description:    rule.Detail,
				PeriodLabel:    periodLabel(rule, year, i, month),
				DueDate:        dueDate,
				WorkflowStatus: StatusPending,
				Priority:       PriorityMedium,
				AuditFields: AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			})
		}
	}

	return obligations, warnings
}

// occurrenceMonths resolves the calendar months in which a rule falls due.
// ANNUAL rules anchor on DueMonth directly. QUARTERLY rules interpret
// DueMonth 1-3 as a within-quarter offset; a raw month 4-12 is reduced to
// its own offset so the quarter containing that month is due in exactly
// that month and the other quarters at the same relative position.
func occurrenceMonths(rule RuleCatalogEntry) ([]int, error) {
	switch rule.Frequency {
	case FrequencyAnnual:
		if rule.DueMonth < 1 || rule.DueMonth > 12 {
			return nil, fmt.Errorf("due month %d outside 1-12", rule.DueMonth)
		}
		return []int{rule.DueMonth}, nil

	case FrequencyQuarterly:
		if rule.DueMonth < 1 || rule.DueMonth > 12 {
			return nil, fmt.Errorf("due month %d outside 1-12", rule.DueMonth)
		}
		offset := rule.DueMonth
		if offset > 3 {
			offset = (offset-1)%3 + 1
		}
		months := make([]int, 0, 4)
		for q := 0; q < 4; q++ {
			months = append(months, q*3+offset)
		}
		return months, nil

	case FrequencyMonthly:
		months := make([]int, 0, 12)
		for m := 1; m <= 12; m++ {
			months = append(months, m)
		}
		return months, nil
	}

	return nil, fmt.Errorf("unknown frequency %q", rule.Frequency)
}

// clampedDate builds the due date, clamping the day to the last valid day
// of the target month (e.g., day 31 in February of a non-leap year becomes
// the 28th).
func clampedDate(year, month, day int) time.Time {
	last := lastDayOfMonth(year, month)
	if day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year, month int) int {
	// Day zero of the following month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// periodLabel renders the human-readable period an occurrence covers.
func periodLabel(rule RuleCatalogEntry, year, occurrence, month int) string {
	switch rule.Frequency {
	case FrequencyMonthly:
		return fmt.Sprintf("%s %d", time.Month(month).String(), year)
	case FrequencyQuarterly:
		return fmt.Sprintf("Q%d %d", occurrence+1, year)
	default:
		if rule.ReferencePeriod != "" {
			return fmt.Sprintf("%s %d", rule.ReferencePeriod, year)
		}
		return fmt.Sprintf("%d", year)
	}
}
