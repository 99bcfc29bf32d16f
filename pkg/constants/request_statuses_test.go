package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_AllowedEdges(t *testing.T) {
	assert.True(t, CanTransition(StatusNew, StatusInProgress))
	assert.True(t, CanTransition(StatusInProgress, StatusRepaired))
	assert.True(t, CanTransition(StatusInProgress, StatusScrap))
}

func TestCanTransition_EveryOtherPairIsRejected(t *testing.T) {
	allowed := map[[2]string]bool{
		{StatusNew, StatusInProgress}:      true,
		{StatusInProgress, StatusRepaired}: true,
		{StatusInProgress, StatusScrap}:    true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			got := CanTransition(from, to)
			want := allowed[[2]string{from, to}]
			assert.Equalf(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_SameStateIsRejected(t *testing.T) {
	for _, s := range AllStatuses {
		assert.Falsef(t, CanTransition(s, s), "%s -> %s must be rejected", s, s)
	}
}

func TestCanTransition_UnknownCodes(t *testing.T) {
	assert.False(t, CanTransition("Bogus", StatusInProgress))
	assert.False(t, CanTransition(StatusNew, "Bogus"))
	assert.False(t, CanTransition("", ""))
	// casing matters, stored codes are verbatim
	assert.False(t, CanTransition("new", StatusInProgress))
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	for _, terminal := range TerminalStatuses {
		assert.True(t, IsTerminalStatus(terminal))
		for _, to := range AllStatuses {
			assert.Falsef(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("Done"))
	assert.False(t, IsValidStatus(""))
}
