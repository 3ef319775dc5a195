package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobStatusTransitions(t *testing.T) {
	t.Run(`draft`, func(t *testing.T) {
		require.True(t, JobStatusDraft.IsAllowChange(JobStatusPending))
		require.True(t, JobStatusDraft.IsAllowChange(JobStatusCancelled))
		require.False(t, JobStatusDraft.IsAllowChange(JobStatusCompleted))
	})

	t.Run(`pending`, func(t *testing.T) {
		require.True(t, JobStatusPending.IsAllowChange(JobStatusInProgress))
		require.True(t, JobStatusPending.IsAllowChange(JobStatusOnHold))
		require.False(t, JobStatusPending.IsAllowChange(JobStatusCompleted))
	})

	t.Run(`in_progress`, func(t *testing.T) {
		require.True(t, JobStatusInProgress.IsAllowChange(JobStatusCompleted))
		require.True(t, JobStatusInProgress.IsAllowChange(JobStatusOverdue))
		require.False(t, JobStatusInProgress.IsAllowChange(JobStatusDraft))
	})

	t.Run(`terminal statuses`, func(t *testing.T) {
		for _, status := range []JobStatus{JobStatusCompleted, JobStatusCancelled} {
			require.False(t, status.IsAllowChange(JobStatusInProgress))
			require.False(t, status.IsAllowChange(JobStatusPending))
		}
	})

	t.Run(`pending_approval only via approval engine`, func(t *testing.T) {
		require.False(t, JobStatusPendingApproval.IsAllowChange(JobStatusPending))
		require.False(t, JobStatusPendingApproval.IsAllowChange(JobStatusCancelled))
	})
}

func TestJobStatusIsValid(t *testing.T) {
	require.True(t, JobStatusDraft.IsValid())
	require.True(t, JobStatusOnHold.IsValid())
	require.False(t, JobStatus("unknown").IsValid())
}

func TestApprovalStatusIsFinal(t *testing.T) {
	require.False(t, ApprovalStatusPending.IsFinal())
	require.True(t, ApprovalStatusApproved.IsFinal())
	require.True(t, ApprovalStatusRejected.IsFinal())
}
