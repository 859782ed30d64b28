package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionState_Defaults(t *testing.T) {
	state := NewSessionState("2026-08-28")

	assert.Equal(t, DefaultUsername, state.Username)
	assert.Equal(t, StartingPoints, state.Points)
	assert.Equal(t, StartingTickets, state.Tickets)
	assert.Equal(t, 0, state.PitySSR)
	assert.True(t, state.FreeDrawToday)
	assert.False(t, state.TodaySSR)
	assert.Equal(t, "2026-08-28", state.LastActiveDate)
	assert.NotNil(t, state.SelectedCards)
	assert.Empty(t, state.SelectedCards)
}

func TestClone_Independent(t *testing.T) {
	state := NewSessionState("2026-08-28")
	state.SelectedCards = []string{"ssr_1"}

	clone := state.Clone()
	clone.SelectedCards[0] = "changed"
	clone.Points = 0

	assert.Equal(t, "ssr_1", state.SelectedCards[0])
	assert.Equal(t, StartingPoints, state.Points)
}

func TestRollover_ResetsDailyFieldsOnly(t *testing.T) {
	state := SessionState{
		Username:         "Ink",
		Points:           42,
		Tickets:          3,
		PitySSR:          87,
		FreeDrawToday:    false,
		TodaySSR:         true,
		LastActiveDate:   "2026-08-27",
		SynopsisCount:    2,
		WritingSubmitted: true,
		SelectedCards:    []string{"r_1"},
	}

	next, crossed := state.Rollover("2026-08-28")
	assert.True(t, crossed)

	// Daily fields reset.
	assert.True(t, next.FreeDrawToday)
	assert.False(t, next.TodaySSR)
	assert.Equal(t, 0, next.SynopsisCount)
	assert.False(t, next.WritingSubmitted)
	assert.Equal(t, "2026-08-28", next.LastActiveDate)

	// Everything else carries over.
	assert.Equal(t, "Ink", next.Username)
	assert.Equal(t, 42, next.Points)
	assert.Equal(t, 3, next.Tickets)
	assert.Equal(t, 87, next.PitySSR)
	assert.Equal(t, []string{"r_1"}, next.SelectedCards)
}

func TestRollover_SameDayIsNoOp(t *testing.T) {
	state := NewSessionState("2026-08-28")
	state.FreeDrawToday = false
	state.SynopsisCount = 1

	next, crossed := state.Rollover("2026-08-28")
	assert.False(t, crossed)
	assert.Equal(t, state, next)
}

func TestRollover_IdempotentAcrossMultipleDays(t *testing.T) {
	// A session idle for a week still rolls over exactly once.
	state := NewSessionState("2026-08-20")
	state.FreeDrawToday = false

	next, crossed := state.Rollover("2026-08-28")
	assert.True(t, crossed)

	again, crossed := next.Rollover("2026-08-28")
	assert.False(t, crossed)
	assert.Equal(t, next, again)
}

func TestIsSelected(t *testing.T) {
	state := NewSessionState("2026-08-28")
	state.SelectedCards = []string{"a", "b"}

	assert.True(t, state.IsSelected("a"))
	assert.False(t, state.IsSelected("c"))
}
