package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/metrics"
)

// ClaimSynopsisReward implements Service. Credits the synopsis reward
// while the daily quota (2 uses) holds.
func (s *service) ClaimSynopsisReward(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	if s.state.SynopsisCount >= domain.MaxSynopsisPerDay {
		return Snapshot{}, domain.ErrQuotaExhausted
	}

	state := s.state.Clone()
	state.SynopsisCount++
	return s.credit(ctx, state, RewardSynopsisPoints, ActionSynopsis, "synopsis generation reward")
}

// ClaimWritingReward implements Service. Credits the daily writing
// reward once per day. Content and elapsed-time validation happen at
// the boundary; only the quota gate lives here.
func (s *service) ClaimWritingReward(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	if s.state.WritingSubmitted {
		return Snapshot{}, domain.ErrQuotaExhausted
	}

	state := s.state.Clone()
	state.WritingSubmitted = true
	return s.credit(ctx, state, RewardWritingPoints, ActionWriting, "daily writing reward")
}

// credit commits a non-draw point credit together with its movement
// entry. Callers hold s.mu and pass the next state with the quota
// field already advanced.
func (s *service) credit(ctx context.Context, state domain.SessionState, amount int, action, note string) (Snapshot, error) {
	state.Points += amount

	entry := domain.PointsLogEntry{
		ID:             uuid.NewString(),
		Timestamp:      s.now(),
		Action:         action,
		PointsDelta:    amount,
		PityBefore:     state.PitySSR,
		PityAfter:      state.PitySSR,
		Note:           note,
		RelatedGachaID: nil,
	}
	history := s.history.Append(&entry, nil)

	if err := s.store.Save(ctx, &state, &history, nil, nil); err != nil {
		return Snapshot{}, fmt.Errorf("failed to persist reward: %w", err)
	}
	s.state = state
	s.history = history

	metrics.RecordReward(action, amount)
	logger.FromContext(ctx).Info(LogMsgRewardClaimed, "action", action, "points", amount)
	return s.snapshotLocked(), nil
}
