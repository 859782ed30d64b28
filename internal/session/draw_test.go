package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/gacha"
)

func TestDrawSingle_TicketsPreferred(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	outcome, err := svc.DrawSingle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StartingTickets-1, outcome.Snapshot.State.Tickets)
	assert.Equal(t, domain.StartingPoints, outcome.Snapshot.State.Points)
	assert.Equal(t, 1, outcome.Snapshot.State.PitySSR)

	assert.Equal(t, domain.CostTickets, outcome.GachaLog.CostType)
	assert.Equal(t, CostSingleTickets, outcome.GachaLog.CostAmount)
	assert.Equal(t, -1, outcome.PointsLog.TicketsDelta)
	assert.Equal(t, 0, outcome.PointsLog.PointsDelta)
	assert.Equal(t, ActionSingleDraw, outcome.PointsLog.Action)
	require.NotNil(t, outcome.PointsLog.RelatedGachaID)
	assert.Equal(t, outcome.GachaLog.GachaID, *outcome.PointsLog.RelatedGachaID)
}

func TestDrawSingle_FallsBackToPoints(t *testing.T) {
	f := newFixture(t)
	f.seedState(domain.SessionState{
		Points:         100,
		Tickets:        0,
		LastActiveDate: "2026-08-28",
		SelectedCards:  []string{},
	})
	svc := f.service()

	outcome, err := svc.DrawSingle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 90, outcome.Snapshot.State.Points)
	assert.Equal(t, domain.CostPoints, outcome.GachaLog.CostType)
	assert.Equal(t, CostSinglePoints, outcome.GachaLog.CostAmount)
	assert.Equal(t, -CostSinglePoints, outcome.PointsLog.PointsDelta)
}

func TestDrawTen_NoMixedPayment(t *testing.T) {
	// Nine tickets cannot part-pay a ten draw: the full point cost is
	// charged and the tickets stay put.
	f := newFixture(t)
	f.seedState(domain.SessionState{
		Points:         100,
		Tickets:        9,
		LastActiveDate: "2026-08-28",
		SelectedCards:  []string{},
	})
	svc := f.service()

	outcome, err := svc.DrawTen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, outcome.Snapshot.State.Points)
	assert.Equal(t, 9, outcome.Snapshot.State.Tickets)
	assert.Equal(t, domain.CostPoints, outcome.GachaLog.CostType)
	assert.Equal(t, CostTenPoints, outcome.GachaLog.CostAmount)
	assert.Len(t, outcome.Cards, gacha.BatchSize)
}

func TestDrawTen_TenTicketsPayTickets(t *testing.T) {
	f := newFixture(t)
	f.seedState(domain.SessionState{
		Points:         0,
		Tickets:        10,
		LastActiveDate: "2026-08-28",
		SelectedCards:  []string{},
	})
	svc := f.service()

	outcome, err := svc.DrawTen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.Snapshot.State.Tickets)
	assert.Equal(t, domain.CostTickets, outcome.GachaLog.CostType)
	assert.Equal(t, -CostTenTickets, outcome.PointsLog.TicketsDelta)
}

func TestDrawFree_ConsumesFlagOnce(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	outcome, err := svc.DrawFree(context.Background())
	require.NoError(t, err)

	// The free draw moves no currency.
	assert.Equal(t, domain.StartingPoints, outcome.Snapshot.State.Points)
	assert.Equal(t, domain.StartingTickets, outcome.Snapshot.State.Tickets)
	assert.False(t, outcome.Snapshot.State.FreeDrawToday)
	assert.Equal(t, domain.CostFree, outcome.GachaLog.CostType)
	assert.Equal(t, 0, outcome.GachaLog.CostAmount)
	assert.Equal(t, 0, outcome.PointsLog.PointsDelta)
	assert.Equal(t, 0, outcome.PointsLog.TicketsDelta)
	assert.Equal(t, ActionFreeDraw, outcome.PointsLog.Action)

	_, err = svc.DrawFree(context.Background())
	assert.ErrorIs(t, err, domain.ErrFreeDrawUsed)
}

func TestDraw_PityGuaranteeAtCeiling(t *testing.T) {
	f := newFixture(t)
	f.roll = 0.9999 // never a natural SSR
	f.seedState(domain.SessionState{
		Points:         100,
		Tickets:        5,
		PitySSR:        gacha.PityMax - 1,
		LastActiveDate: "2026-08-28",
		SelectedCards:  []string{},
	})
	svc := f.service()

	outcome, err := svc.DrawSingle(context.Background())
	require.NoError(t, err)

	assert.True(t, outcome.HasSSR)
	assert.True(t, outcome.PityTriggered)
	assert.Equal(t, 0, outcome.Snapshot.State.PitySSR)
	assert.True(t, outcome.Snapshot.State.TodaySSR)
	assert.Equal(t, gacha.PityMax-1, outcome.GachaLog.PityBefore)
	assert.Equal(t, 0, outcome.GachaLog.PityAfter)
	assert.Contains(t, outcome.PointsLog.Note, "(guaranteed)")
	assert.Contains(t, outcome.PointsLog.Note, "drew SSR - Alpha")
}

func TestDrawTen_GuaranteeAtCeilingMidBatch(t *testing.T) {
	f := newFixture(t)
	f.roll = 0.9999
	f.seedState(domain.SessionState{
		Points:         0,
		Tickets:        10,
		PitySSR:        gacha.PityMax - 1,
		LastActiveDate: "2026-08-28",
		SelectedCards:  []string{},
	})
	svc := f.service()

	outcome, err := svc.DrawTen(context.Background())
	require.NoError(t, err)

	// The very first draw of the batch is the guaranteed one; the rest
	// restart the counter.
	assert.True(t, outcome.PityTriggered)
	assert.Equal(t, domain.RaritySSR, outcome.GachaLog.Rarities[0])
	assert.Less(t, outcome.Snapshot.State.PitySSR, gacha.BatchSize)
	assert.Equal(t, gacha.BatchSize-1, outcome.Snapshot.State.PitySSR)
}

func TestDraw_HistoryAndCollectionCommitted(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	_, err := svc.DrawSingle(context.Background())
	require.NoError(t, err)
	_, err = svc.DrawTen(context.Background())
	require.NoError(t, err)

	history := svc.History(context.Background())
	require.Len(t, history.Points, 2)
	require.Len(t, history.Gacha, 2)
	// Newest first.
	assert.Equal(t, ActionTenDraw, history.Points[0].Action)
	assert.Equal(t, ActionSingleDraw, history.Points[1].Action)
	assert.Equal(t, domain.DrawModeTen, history.Gacha[0].Mode)

	// Eleven N draws land as eleven copies.
	snap := svc.Snapshot(context.Background())
	assert.Equal(t, 11, snap.Collection.Owned["n_a"])

	// Everything survives a reload from storage.
	reloaded := f.store.LoadHistory(context.Background())
	require.Len(t, reloaded.Gacha, 2)
	assert.Equal(t, history.Gacha[0].GachaID, reloaded.Gacha[0].GachaID)
	assert.Equal(t, 11, f.store.LoadCollection(context.Background()).Owned["n_a"])
}

func TestDraw_TenDrawNoteTalliesRarities(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	outcome, err := svc.DrawTen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "result: N x10", outcome.PointsLog.Note)
}

func TestDraw_PersistFailureMutatesNothing(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	f.kv.FailPuts = errors.New("disk full")
	_, err := svc.DrawSingle(context.Background())
	require.Error(t, err)
	f.kv.FailPuts = nil

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, domain.StartingTickets, snap.State.Tickets)
	assert.Equal(t, 0, snap.State.PitySSR)
	assert.Empty(t, svc.History(context.Background()).Gacha)
	assert.Empty(t, snap.Collection.Owned)
}

func TestResolveCost_Table(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.SessionState
		mode       domain.DrawMode
		wantKind   domain.CostKind
		wantAmount int
		wantCount  int
		wantErr    error
	}{
		{
			name:       "single prefers tickets",
			state:      domain.SessionState{Tickets: 1, Points: 100},
			mode:       domain.DrawModeSingle,
			wantKind:   domain.CostTickets,
			wantAmount: 1,
			wantCount:  1,
		},
		{
			name:       "single falls back to points",
			state:      domain.SessionState{Tickets: 0, Points: 10},
			mode:       domain.DrawModeSingle,
			wantKind:   domain.CostPoints,
			wantAmount: 10,
			wantCount:  1,
		},
		{
			name:    "single refused when broke",
			state:   domain.SessionState{Tickets: 0, Points: 9},
			mode:    domain.DrawModeSingle,
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:       "ten requires full ticket cost",
			state:      domain.SessionState{Tickets: 10, Points: 0},
			mode:       domain.DrawModeTen,
			wantKind:   domain.CostTickets,
			wantAmount: 10,
			wantCount:  10,
		},
		{
			name:       "ten with nine tickets bills points",
			state:      domain.SessionState{Tickets: 9, Points: 90},
			mode:       domain.DrawModeTen,
			wantKind:   domain.CostPoints,
			wantAmount: 90,
			wantCount:  10,
		},
		{
			name:    "ten refused when broke",
			state:   domain.SessionState{Tickets: 9, Points: 89},
			mode:    domain.DrawModeTen,
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:       "free draw available",
			state:      domain.SessionState{FreeDrawToday: true},
			mode:       domain.DrawModeFree,
			wantKind:   domain.CostFree,
			wantAmount: 0,
			wantCount:  1,
		},
		{
			name:    "free draw spent",
			state:   domain.SessionState{FreeDrawToday: false},
			mode:    domain.DrawModeFree,
			wantErr: domain.ErrFreeDrawUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, amount, count, err := resolveCost(tt.state, tt.mode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
