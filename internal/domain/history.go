package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DrawMode identifies how a draw transaction was initiated.
type DrawMode string

const (
	DrawModeSingle DrawMode = "single"
	DrawModeTen    DrawMode = "ten"
	DrawModeFree   DrawMode = "free"
)

// CostKind identifies which currency a draw was billed in.
type CostKind string

const (
	CostPoints  CostKind = "points"
	CostTickets CostKind = "tickets"
	CostFree    CostKind = "free"
)

// PointsLogEntry records a single resource movement. Entries are
// immutable once appended.
type PointsLogEntry struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Action         string    `json:"action"`
	PointsDelta    int       `json:"points_delta"`
	TicketsDelta   int       `json:"tickets_delta"`
	PityBefore     int       `json:"pity_before"`
	PityAfter      int       `json:"pity_after"`
	Note           string    `json:"note"`
	RelatedGachaID *string   `json:"related_gacha_id"` // nil when not draw-related
}

// GachaLogEntry records one draw transaction and its ordered outcomes.
type GachaLogEntry struct {
	GachaID       string    `json:"gacha_id"`
	Timestamp     time.Time `json:"timestamp"`
	Mode          DrawMode  `json:"mode"`
	CostType      CostKind  `json:"cost_type"`
	CostAmount    int       `json:"cost_amount"`
	CardIDs       []string  `json:"-"` // draw order within the batch
	Rarities      []Rarity  `json:"-"`
	HasSSR        bool      `json:"has_ssr"`
	PityTriggered bool      `json:"pity_triggered"`
	PityBefore    int       `json:"pity_before"`
	PityAfter     int       `json:"pity_after"`
}

// ResultDelimiter joins multi-value result fields at the persistence
// boundary. In memory the results stay typed ordered lists.
const ResultDelimiter = "|"

// gachaLogWire is the persisted shape of GachaLogEntry: the result
// lists collapse to delimited strings, matching the export contract.
type gachaLogWire struct {
	GachaID        string    `json:"gacha_id"`
	Timestamp      time.Time `json:"timestamp"`
	Mode           DrawMode  `json:"mode"`
	CostType       CostKind  `json:"cost_type"`
	CostAmount     int       `json:"cost_amount"`
	ResultCardIDs  string    `json:"result_card_ids"`
	ResultRarities string    `json:"result_rarities"`
	HasSSR         bool      `json:"has_ssr"`
	PityTriggered  bool      `json:"pity_triggered"`
	PityBefore     int       `json:"pity_before"`
	PityAfter      int       `json:"pity_after"`
}

// JoinedCardIDs returns the card ids pipe-joined in draw order.
func (e GachaLogEntry) JoinedCardIDs() string {
	return strings.Join(e.CardIDs, ResultDelimiter)
}

// JoinedRarities returns the rarities pipe-joined in draw order.
func (e GachaLogEntry) JoinedRarities() string {
	parts := make([]string, len(e.Rarities))
	for i, r := range e.Rarities {
		parts[i] = string(r)
	}
	return strings.Join(parts, ResultDelimiter)
}

// MarshalJSON serializes the result lists as delimited strings.
func (e GachaLogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(gachaLogWire{
		GachaID:        e.GachaID,
		Timestamp:      e.Timestamp,
		Mode:           e.Mode,
		CostType:       e.CostType,
		CostAmount:     e.CostAmount,
		ResultCardIDs:  e.JoinedCardIDs(),
		ResultRarities: e.JoinedRarities(),
		HasSSR:         e.HasSSR,
		PityTriggered:  e.PityTriggered,
		PityBefore:     e.PityBefore,
		PityAfter:      e.PityAfter,
	})
}

// UnmarshalJSON restores the typed result lists from the wire shape.
func (e *GachaLogEntry) UnmarshalJSON(data []byte) error {
	var w gachaLogWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.GachaID = w.GachaID
	e.Timestamp = w.Timestamp
	e.Mode = w.Mode
	e.CostType = w.CostType
	e.CostAmount = w.CostAmount
	e.HasSSR = w.HasSSR
	e.PityTriggered = w.PityTriggered
	e.PityBefore = w.PityBefore
	e.PityAfter = w.PityAfter
	e.CardIDs = splitResults(w.ResultCardIDs)
	e.Rarities = nil
	for _, part := range splitResults(w.ResultRarities) {
		e.Rarities = append(e.Rarities, Rarity(part))
	}
	return nil
}

func splitResults(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ResultDelimiter)
}

// History is the pair of append-only logs. Index 0 is the newest entry.
type History struct {
	Points []PointsLogEntry `json:"points"`
	Gacha  []GachaLogEntry  `json:"gacha"`
}

// NewHistory returns an empty history.
func NewHistory() History {
	return History{Points: []PointsLogEntry{}, Gacha: []GachaLogEntry{}}
}

// Append returns a history with the given entries prepended, preserving
// newest-first read order. Either entry may be omitted by passing nil.
func (h History) Append(points *PointsLogEntry, gacha *GachaLogEntry) History {
	next := History{Points: h.Points, Gacha: h.Gacha}
	if points != nil {
		next.Points = append([]PointsLogEntry{*points}, h.Points...)
	}
	if gacha != nil {
		next.Gacha = append([]GachaLogEntry{*gacha}, h.Gacha...)
	}
	return next
}
