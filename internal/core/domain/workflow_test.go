package domain_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("any status can move to any other", func(t *testing.T) {
		o := domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusCompleted}

		err := domain.SetStatus(&o, domain.StatusPending, now)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, o.WorkflowStatus)
		assert.Equal(t, now, o.LastUpdatedAt)
	})

	t.Run("unknown status is rejected before persistence", func(t *testing.T) {
		o := domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusPending}

		err := domain.SetStatus(&o, "DONE", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, domain.StatusPending, o.WorkflowStatus)
	})
}

func TestCyclePriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from domain.Priority
		want domain.Priority
	}{
		{name: "low bumps to medium", from: domain.PriorityLow, want: domain.PriorityMedium},
		{name: "medium bumps to high", from: domain.PriorityMedium, want: domain.PriorityHigh},
		{name: "high bumps to urgent", from: domain.PriorityHigh, want: domain.PriorityUrgent},
		{name: "urgent wraps around to low", from: domain.PriorityUrgent, want: domain.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := domain.Obligation{ObligationID: "ob-1", Priority: tt.from}

			err := domain.CyclePriority(&o, now)

			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Priority)
			assert.Equal(t, now, o.LastUpdatedAt)
		})
	}

	t.Run("unknown stored priority is rejected", func(t *testing.T) {
		o := domain.Obligation{ObligationID: "ob-1", Priority: "CRITICAL"}

		err := domain.CyclePriority(&o, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestToggleCompletion(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from domain.WorkflowStatus
		want domain.WorkflowStatus
	}{
		{name: "pending completes", from: domain.StatusPending, want: domain.StatusCompleted},
		{name: "completed reverts to pending", from: domain.StatusCompleted, want: domain.StatusPending},
		{name: "overdue normalizes to completed", from: domain.StatusOverdue, want: domain.StatusCompleted},
		{name: "cancelled normalizes to completed", from: domain.StatusCancelled, want: domain.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := domain.Obligation{ObligationID: "ob-1", WorkflowStatus: tt.from}

			domain.ToggleCompletion(&o, now)

			assert.Equal(t, tt.want, o.WorkflowStatus)
			assert.Equal(t, now, o.LastUpdatedAt)
		})
	}

	t.Run("toggle twice from overdue lands on pending", func(t *testing.T) {
		// Single-step normalization, not a cycle through the original status.
		o := domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusOverdue}

		domain.ToggleCompletion(&o, now)
		assert.Equal(t, domain.StatusCompleted, o.WorkflowStatus)

		domain.ToggleCompletion(&o, now)
		assert.Equal(t, domain.StatusPending, o.WorkflowStatus)
	})
}
