package orderstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusReady, true},
		{StatusPending, StatusCancelled, true},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusPending, false},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusPreparing, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionSelf(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusPending))
	assert.True(t, StatusReady.CanTransition(StatusReady))
	assert.False(t, StatusCompleted.CanTransition(StatusCompleted))
	assert.False(t, StatusCancelled.CanTransition(StatusCancelled))
}
