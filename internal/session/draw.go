package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/gacha"
	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/metrics"
)

// DrawOutcome is the committed result of one draw transaction.
type DrawOutcome struct {
	Cards         []domain.Card `json:"cards"`    // draw order
	Revealed      []domain.Card `json:"revealed"` // rarity-sorted for the reveal sequence
	HasSSR        bool          `json:"has_ssr"`
	PityTriggered bool          `json:"pity_triggered"`

	GachaLog  domain.GachaLogEntry  `json:"gacha_log"`
	PointsLog domain.PointsLogEntry `json:"points_log"`

	Snapshot Snapshot `json:"snapshot"`
}

// DrawSingle implements Service.
func (s *service) DrawSingle(ctx context.Context) (*DrawOutcome, error) {
	return s.draw(ctx, domain.DrawModeSingle)
}

// DrawTen implements Service.
func (s *service) DrawTen(ctx context.Context) (*DrawOutcome, error) {
	return s.draw(ctx, domain.DrawModeTen)
}

// DrawFree implements Service.
func (s *service) DrawFree(ctx context.Context) (*DrawOutcome, error) {
	return s.draw(ctx, domain.DrawModeFree)
}

// draw runs one complete draw transaction: precondition check, the
// rolls, the single resource debit, pity and flag updates, collection
// merge, and the paired log appends - committed together or not at
// all.
func (s *service) draw(ctx context.Context, mode domain.DrawMode) (*DrawOutcome, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(ctx)

	state := s.state.Clone()

	costType, costAmount, count, err := resolveCost(state, mode)
	if err != nil {
		return nil, err
	}

	pityBefore := state.PitySSR
	batch := s.engine.RollBatch(pityBefore, count)

	// Exactly one debit, or the free-flag consumption.
	switch costType {
	case domain.CostTickets:
		state.Tickets -= costAmount
	case domain.CostPoints:
		state.Points -= costAmount
	case domain.CostFree:
		state.FreeDrawToday = false
	}
	state.PitySSR = batch.PityAfter
	state.TodaySSR = state.TodaySSR || batch.HasSSR

	collection := s.collection.Add(batch.Cards)

	now := s.now()
	gachaID := uuid.NewString()

	gachaLog := domain.GachaLogEntry{
		GachaID:       gachaID,
		Timestamp:     now,
		Mode:          mode,
		CostType:      costType,
		CostAmount:    costAmount,
		CardIDs:       cardIDs(batch.Cards),
		Rarities:      batch.Rarities,
		HasSSR:        batch.HasSSR,
		PityTriggered: batch.PityTriggered,
		PityBefore:    pityBefore,
		PityAfter:     batch.PityAfter,
	}

	pointsDelta, ticketsDelta := 0, 0
	switch costType {
	case domain.CostPoints:
		pointsDelta = -costAmount
	case domain.CostTickets:
		ticketsDelta = -costAmount
	}
	pointsLog := domain.PointsLogEntry{
		ID:             uuid.NewString(),
		Timestamp:      now,
		Action:         actionLabel(mode),
		PointsDelta:    pointsDelta,
		TicketsDelta:   ticketsDelta,
		PityBefore:     pityBefore,
		PityAfter:      batch.PityAfter,
		Note:           drawNote(batch),
		RelatedGachaID: &gachaID,
	}

	history := s.history.Append(&pointsLog, &gachaLog)

	if err := s.store.Save(ctx, &state, &history, &collection, nil); err != nil {
		return nil, fmt.Errorf("failed to persist draw: %w", err)
	}
	s.state = state
	s.history = history
	s.collection = collection

	metrics.RecordDraw(mode, batch.Rarities, batch.PityTriggered)
	if costType == domain.CostPoints {
		metrics.RecordPointsSpent(costAmount)
	}
	log.Info(LogMsgDrawCommitted,
		"mode", mode,
		"cost_type", costType,
		"cost_amount", costAmount,
		"has_ssr", batch.HasSSR,
		"pity_after", batch.PityAfter)

	return &DrawOutcome{
		Cards:         batch.Cards,
		Revealed:      gacha.SortByRarity(batch.Cards),
		HasSSR:        batch.HasSSR,
		PityTriggered: batch.PityTriggered,
		GachaLog:      gachaLog,
		PointsLog:     pointsLog,
		Snapshot:      s.snapshotLocked(),
	}, nil
}

// resolveCost applies the per-mode preconditions and the
// tickets-over-points preference. No mixed payment: a ten draw charges
// all ten tickets or the full point cost.
func resolveCost(state domain.SessionState, mode domain.DrawMode) (domain.CostKind, int, int, error) {
	switch mode {
	case domain.DrawModeSingle:
		if state.Tickets >= CostSingleTickets {
			return domain.CostTickets, CostSingleTickets, 1, nil
		}
		if state.Points >= CostSinglePoints {
			return domain.CostPoints, CostSinglePoints, 1, nil
		}
		return "", 0, 0, domain.ErrInsufficientFunds
	case domain.DrawModeTen:
		if state.Tickets >= CostTenTickets {
			return domain.CostTickets, CostTenTickets, gacha.BatchSize, nil
		}
		if state.Points >= CostTenPoints {
			return domain.CostPoints, CostTenPoints, gacha.BatchSize, nil
		}
		return "", 0, 0, domain.ErrInsufficientFunds
	case domain.DrawModeFree:
		if !state.FreeDrawToday {
			return "", 0, 0, domain.ErrFreeDrawUsed
		}
		return domain.CostFree, 0, 1, nil
	}
	return "", 0, 0, fmt.Errorf("unknown draw mode %q", mode)
}

func actionLabel(mode domain.DrawMode) string {
	switch mode {
	case domain.DrawModeTen:
		return ActionTenDraw
	case domain.DrawModeFree:
		return ActionFreeDraw
	default:
		return ActionSingleDraw
	}
}

// drawNote renders the human-readable movement-log note: the card for
// a single draw, a rarity tally for a batch.
func drawNote(batch gacha.BatchResult) string {
	suffix := ""
	if batch.PityTriggered {
		suffix = " (guaranteed)"
	}
	if len(batch.Cards) == 1 {
		card := batch.Cards[0]
		return fmt.Sprintf("drew %s - %s%s", card.Rarity, card.Title, suffix)
	}

	// Tally in order of first appearance, i.e. draw order.
	counts := map[domain.Rarity]int{}
	var order []domain.Rarity
	for _, r := range batch.Rarities {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}
	parts := make([]string, len(order))
	for i, r := range order {
		parts[i] = fmt.Sprintf("%s x%d", r, counts[r])
	}
	return fmt.Sprintf("result: %s%s", strings.Join(parts, " "), suffix)
}

func cardIDs(cards []domain.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.CardID
	}
	return ids
}
