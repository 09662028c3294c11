package domain_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obligation(id, companyID string, dueDate time.Time) domain.Obligation {
	return domain.Obligation{
		ObligationID:   id,
		CompanyID:      companyID,
		SourceRuleID:   "rule-1",
		ObligationType: "VAT",
		DueDate:        dueDate,
		WorkflowStatus: domain.StatusPending,
		Priority:       domain.PriorityMedium,
	}
}

func sampleCollection() []domain.Obligation {
	return []domain.Obligation{
		obligation("ob-1", "comp-1", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		obligation("ob-2", "comp-1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		obligation("ob-3", "comp-2", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)),
		obligation("ob-4", "comp-1", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)),
		obligation("ob-5", "comp-2", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)),
	}
}

func TestSummarize_PartitionInvariant(t *testing.T) {
	tests := []struct {
		name string
		obs  []domain.Obligation
		now  time.Time
	}{
		{name: "empty collection", obs: nil, now: time.Now()},
		{name: "mixed collection", obs: sampleCollection(), now: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "everything overdue", obs: sampleCollection(), now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "everything upcoming", obs: sampleCollection(), now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := domain.Summarize(tt.obs, tt.now)
			assert.Equal(t, len(tt.obs), stats.Total)
			assert.Equal(t, stats.Total, stats.Upcoming+stats.Due+stats.Overdue)
		})
	}
}

func TestSummarize_Counts(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	stats := domain.Summarize(sampleCollection(), now)

	// ob-1 overdue; ob-2 overdue; ob-3 due in 3 days; ob-4, ob-5 upcoming.
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Overdue)
	assert.Equal(t, 1, stats.Due)
	assert.Equal(t, 2, stats.Upcoming)
}

func TestFilter_Criteria(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	obs := sampleCollection()
	obs[1].WorkflowStatus = domain.StatusCompleted
	obs[1].Priority = domain.PriorityHigh
	obs[3].ObligationType = "CIT"

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		wantIDs  []string
	}{
		{name: "unset criteria match everything", criteria: domain.FilterCriteria{}, wantIDs: []string{"ob-1", "ob-2", "ob-3", "ob-4", "ob-5"}},
		{name: "by company", criteria: domain.FilterCriteria{CompanyID: "comp-2"}, wantIDs: []string{"ob-3", "ob-5"}},
		{name: "by workflow status", criteria: domain.FilterCriteria{WorkflowStatus: domain.StatusCompleted}, wantIDs: []string{"ob-2"}},
		{name: "by obligation type", criteria: domain.FilterCriteria{ObligationType: "CIT"}, wantIDs: []string{"ob-4"}},
		{name: "by priority", criteria: domain.FilterCriteria{Priority: domain.PriorityHigh}, wantIDs: []string{"ob-2"}},
		{name: "by temporal status", criteria: domain.FilterCriteria{TemporalStatus: domain.TemporalOverdue}, wantIDs: []string{"ob-1", "ob-2"}},
		{
			name:     "criteria are conjunctive",
			criteria: domain.FilterCriteria{CompanyID: "comp-1", TemporalStatus: domain.TemporalOverdue, WorkflowStatus: domain.StatusPending},
			wantIDs:  []string{"ob-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Filter(obs, tt.criteria, now)
			require.NoError(t, err)

			gotIDs := make([]string, len(got))
			for i, o := range got {
				gotIDs[i] = o.ObligationID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilter_RejectsUnknownEnumValues(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
	}{
		{name: "unknown workflow status", criteria: domain.FilterCriteria{WorkflowStatus: "DONE"}},
		{name: "unknown temporal status", criteria: domain.FilterCriteria{TemporalStatus: "LATE"}},
		{name: "unknown priority", criteria: domain.FilterCriteria{Priority: "CRITICAL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Filter(sampleCollection(), tt.criteria, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestFilter_SortsByDueDateWithIDTieBreak(t *testing.T) {
	now := time.Now()
	sameDay := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	obs := []domain.Obligation{
		obligation("ob-b", "comp-1", sameDay),
		obligation("ob-c", "comp-1", time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC)),
		obligation("ob-a", "comp-1", sameDay),
	}

	got, err := domain.Filter(obs, domain.FilterCriteria{}, now)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ob-c", got[0].ObligationID)
	assert.Equal(t, "ob-a", got[1].ObligationID)
	assert.Equal(t, "ob-b", got[2].ObligationID)
}

func TestForPeriod_DrillDown(t *testing.T) {
	obs := sampleCollection()

	tests := []struct {
		name                   string
		year, month, week, day int
		wantIDs                []string
	}{
		{name: "year view", year: 2025, wantIDs: []string{"ob-1", "ob-2", "ob-3", "ob-4"}},
		{name: "other year", year: 2026, wantIDs: []string{"ob-5"}},
		{name: "month view", year: 2025, month: 6, wantIDs: []string{"ob-2", "ob-3"}},
		{name: "day view", year: 2025, month: 6, day: 18, wantIDs: []string{"ob-3"}},
		{name: "week view", year: 2025, week: 25, wantIDs: []string{"ob-3"}}, // 2025-06-18 falls in ISO week 25
		{name: "empty period", year: 2025, month: 12, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ForPeriod(obs, tt.year, tt.month, tt.week, tt.day)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, o := range got {
				gotIDs = append(gotIDs, o.ObligationID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestForPeriod_FailsFastOnInvalidParameters(t *testing.T) {
	obs := sampleCollection()

	tests := []struct {
		name                   string
		year, month, week, day int
	}{
		{name: "missing year", year: 0, month: 6},
		{name: "month out of range", year: 2025, month: 13},
		{name: "week out of range", year: 2025, week: 54},
		{name: "day without month", year: 2025, day: 10},
		{name: "day out of range", year: 2025, month: 6, day: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ForPeriod(obs, tt.year, tt.month, tt.week, tt.day)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
