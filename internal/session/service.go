// Package session owns every transition of the single-user session
// aggregate: draw transactions, reward claims, the daily rollover, and
// snapshot export/import. Each operation computes the full next state,
// persists it in one atomic write, and only then replaces the cached
// aggregates - a refused operation mutates nothing.
//
// "Today" is the calendar date of the injected clock (process-local
// time); no timezone reconciliation is attempted at the midnight
// boundary.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/InkGacha_Go/internal/catalog"
	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/gacha"
	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/storage"
)

// Snapshot is the read view handed to the UI after every operation.
type Snapshot struct {
	State      domain.SessionState `json:"state"`
	Collection domain.Collection   `json:"collection"`
	Meta       domain.Meta         `json:"meta"`

	CanDrawSingle bool `json:"canDrawSingle"`
	CanDrawTen    bool `json:"canDrawTen"`
	CanDrawFree   bool `json:"canDrawFree"`
}

// Service is the collaborator-facing core API.
type Service interface {
	// Snapshot returns the current aggregates and draw affordances.
	Snapshot(ctx context.Context) Snapshot

	// History returns both logs, newest-first.
	History(ctx context.Context) domain.History

	// DrawSingle, DrawTen and DrawFree run one draw transaction each.
	// A failed precondition returns a domain sentinel error with no
	// state change.
	DrawSingle(ctx context.Context) (*DrawOutcome, error)
	DrawTen(ctx context.Context) (*DrawOutcome, error)
	DrawFree(ctx context.Context) (*DrawOutcome, error)

	// ClaimSynopsisReward and ClaimWritingReward credit the fixed
	// point rewards, gated by their daily quotas.
	ClaimSynopsisReward(ctx context.Context) (Snapshot, error)
	ClaimWritingReward(ctx context.Context) (Snapshot, error)

	// ToggleCardSelection toggles an owned card in the focus set.
	ToggleCardSelection(ctx context.Context, cardID string) (Snapshot, error)

	// RenameUser updates the display name.
	RenameUser(ctx context.Context, name string) (Snapshot, error)

	// CheckRollover applies the daily reset if the calendar day has
	// advanced. Idempotent; safe to call from timers and on load.
	CheckRollover(ctx context.Context) bool

	// ExportSnapshot bundles all aggregates and stamps the export time.
	ExportSnapshot(ctx context.Context) (domain.ExportBundle, error)

	// ImportSnapshot validates and fully overwrites all aggregates.
	ImportSnapshot(ctx context.Context, raw []byte) error
}

type service struct {
	mu     sync.Mutex
	store  *storage.Store
	engine *gacha.Engine
	pool   *catalog.Catalog
	now    func() time.Time

	state      domain.SessionState
	history    domain.History
	collection domain.Collection
	meta       domain.Meta
}

// NewService loads the aggregates, applies the on-load daily rollover,
// and returns the ready service.
func NewService(ctx context.Context, store *storage.Store, engine *gacha.Engine, pool *catalog.Catalog, now func() time.Time) (Service, error) {
	s := &service{
		store:      store,
		engine:     engine,
		pool:       pool,
		now:        now,
		state:      store.LoadState(ctx),
		history:    store.LoadHistory(ctx),
		collection: store.LoadCollection(ctx),
		meta:       store.LoadMeta(ctx),
	}

	// Persist defaults on first use so the meta creation time sticks.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)
	if err := store.Save(ctx, &s.state, nil, nil, &s.meta); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) today() string {
	return s.now().Format(DateFormat)
}

// rolloverLocked applies the stale→current transition in memory.
// Callers hold s.mu. Returns whether the day boundary was crossed.
func (s *service) rolloverLocked(ctx context.Context) bool {
	next, crossed := s.state.Rollover(s.today())
	if crossed {
		s.state = next
		logger.FromContext(ctx).Info(LogMsgDailyRollover, "date", next.LastActiveDate)
	}
	return crossed
}

// CheckRollover implements Service. Invoked by the periodic scheduler
// job; running it twice on the same day is a no-op.
func (s *service) CheckRollover(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rolloverLocked(ctx) {
		return false
	}
	if err := s.store.Save(ctx, &s.state, nil, nil, nil); err != nil {
		logger.FromContext(ctx).Error(LogMsgRolloverSaveFailed, "error", err)
	}
	return true
}

func (s *service) snapshotLocked() Snapshot {
	state := s.state.Clone()
	return Snapshot{
		State:         state,
		Collection:    s.collection,
		Meta:          s.meta,
		CanDrawSingle: state.Tickets >= CostSingleTickets || state.Points >= CostSinglePoints,
		CanDrawTen:    state.Tickets >= CostTenTickets || state.Points >= CostTenPoints,
		CanDrawFree:   state.FreeDrawToday,
	}
}

// Snapshot implements Service.
func (s *service) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)
	return s.snapshotLocked()
}

// History implements Service.
func (s *service) History(_ context.Context) domain.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// RenameUser implements Service. The name is trimmed and NFC
// normalized; an empty result falls back to the default display name.
func (s *service) RenameUser(ctx context.Context, name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	cleaned := norm.NFC.String(strings.TrimSpace(name))
	if cleaned == "" {
		cleaned = domain.DefaultUsername
	}

	state := s.state.Clone()
	state.Username = cleaned
	if err := s.store.Save(ctx, &state, nil, nil, nil); err != nil {
		return Snapshot{}, err
	}
	s.state = state
	return s.snapshotLocked(), nil
}

// ToggleCardSelection implements Service. Selecting requires ownership
// and a free slot; deselecting always succeeds for a selected card.
func (s *service) ToggleCardSelection(ctx context.Context, cardID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	state := s.state.Clone()
	if state.IsSelected(cardID) {
		kept := state.SelectedCards[:0]
		for _, id := range state.SelectedCards {
			if id != cardID {
				kept = append(kept, id)
			}
		}
		state.SelectedCards = kept
	} else {
		if !s.collection.Owns(cardID) {
			return Snapshot{}, domain.ErrCardNotOwned
		}
		if len(state.SelectedCards) >= domain.MaxSelectedCards {
			return Snapshot{}, domain.ErrSelectionFull
		}
		state.SelectedCards = append(state.SelectedCards, cardID)
	}

	if err := s.store.Save(ctx, &state, nil, nil, nil); err != nil {
		return Snapshot{}, err
	}
	s.state = state
	return s.snapshotLocked(), nil
}
