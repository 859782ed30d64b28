package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/logger"
)

var bundleValidator = validator.New()

// ExportSnapshot implements Service: bundles the four aggregates and
// stamps the metadata's last-export time.
func (s *service) ExportSnapshot(ctx context.Context) (domain.ExportBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	exportedAt := s.now()
	meta := s.meta
	meta.LastExport = &exportedAt
	if err := s.store.Save(ctx, nil, nil, nil, &meta); err != nil {
		return domain.ExportBundle{}, fmt.Errorf("failed to stamp export: %w", err)
	}
	s.meta = meta

	state := s.state.Clone()
	history := s.history
	collection := s.collection
	return domain.ExportBundle{
		State:      &state,
		History:    &history,
		Collection: &collection,
		Meta:       &meta,
	}, nil
}

// ImportSnapshot implements Service: structural validation first, then
// a full overwrite of all four aggregates. A failed validation leaves
// everything - cached and stored - untouched.
func (s *service) ImportSnapshot(ctx context.Context, raw []byte) error {
	var bundle domain.ExportBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBundle, err)
	}
	if err := bundleValidator.Struct(bundle); err != nil {
		return fmt.Errorf("%w: missing aggregate", domain.ErrInvalidBundle)
	}
	if bundle.History.Points == nil || bundle.History.Gacha == nil {
		return fmt.Errorf("%w: history missing a log", domain.ErrInvalidBundle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := bundle.State.Clone()
	if state.SelectedCards == nil {
		state.SelectedCards = []string{}
	}
	// An imported backup may predate today; run the same idempotent
	// rollover a fresh load would.
	state, _ = state.Rollover(s.today())

	collection := *bundle.Collection
	if collection.Owned == nil {
		collection.Owned = map[string]int{}
	}
	history := *bundle.History
	meta := *bundle.Meta

	if err := s.store.Save(ctx, &state, &history, &collection, &meta); err != nil {
		return fmt.Errorf("failed to persist import: %w", err)
	}
	s.state = state
	s.history = history
	s.collection = collection
	s.meta = meta

	logger.FromContext(ctx).Info(LogMsgSnapshotImported,
		"points_entries", len(history.Points),
		"gacha_entries", len(history.Gacha))
	return nil
}
