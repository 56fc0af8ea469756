package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  Status
		to    Status
		actor Actor
		want  bool
	}{
		{"admin confirms pending", StatusPending, StatusConfirmed, ActorAdmin, true},
		{"owner cannot confirm", StatusPending, StatusConfirmed, ActorOwner, false},
		{"admin cancels pending", StatusPending, StatusCancelled, ActorAdmin, true},
		{"owner cancels pending", StatusPending, StatusCancelled, ActorOwner, true},
		{"admin completes confirmed", StatusConfirmed, StatusCompleted, ActorAdmin, true},
		{"owner cannot complete", StatusConfirmed, StatusCompleted, ActorOwner, false},
		{"pending cannot skip to completed", StatusPending, StatusCompleted, ActorAdmin, false},
		{"completed cannot go back to confirmed", StatusCompleted, StatusConfirmed, ActorAdmin, false},
		{"cancelled is terminal for admin", StatusCancelled, StatusPending, ActorAdmin, false},
		{"cancelled is terminal for owner", StatusCancelled, StatusConfirmed, ActorOwner, false},
		{"confirmed cannot be cancelled", StatusConfirmed, StatusCancelled, ActorAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to, tt.actor))
		})
	}
}

func TestTerminalStatusesOfferNothing(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, s.Terminal())
		assert.Empty(t, NextStatuses(s, ActorAdmin))
		assert.Empty(t, NextStatuses(s, ActorOwner))
	}
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []Status{StatusConfirmed, StatusCancelled}, NextStatuses(StatusPending, ActorAdmin))
	assert.Equal(t, []Status{StatusCancelled}, NextStatuses(StatusPending, ActorOwner))
	assert.Equal(t, []Status{StatusCompleted}, NextStatuses(StatusConfirmed, ActorAdmin))
	assert.Empty(t, NextStatuses(StatusConfirmed, ActorOwner))
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("unknown").Valid())
	assert.False(t, Status("").Valid())
}
