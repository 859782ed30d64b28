package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGachaLogEntry_MarshalJoinsResults(t *testing.T) {
	entry := GachaLogEntry{
		GachaID:    "g-1",
		Timestamp:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Mode:       DrawModeTen,
		CostType:   CostTickets,
		CostAmount: 10,
		CardIDs:    []string{"ssr_1", "n_2", "n_2"},
		Rarities:   []Rarity{RaritySSR, RarityN, RarityN},
		HasSSR:     true,
		PityBefore: 40,
		PityAfter:  2,
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "ssr_1|n_2|n_2", wire["result_card_ids"])
	assert.Equal(t, "SSR|N|N", wire["result_rarities"])
	// The typed list fields must not leak into the wire shape.
	assert.NotContains(t, wire, "CardIDs")
	assert.NotContains(t, wire, "Rarities")
}

func TestGachaLogEntry_RoundTrip(t *testing.T) {
	entry := GachaLogEntry{
		GachaID:       "g-2",
		Timestamp:     time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
		Mode:          DrawModeSingle,
		CostType:      CostPoints,
		CostAmount:    10,
		CardIDs:       []string{"r_3"},
		Rarities:      []Rarity{RarityR},
		PityBefore:    5,
		PityAfter:     6,
		PityTriggered: false,
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var restored GachaLogEntry
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, entry, restored)
}

func TestGachaLogEntry_UnmarshalEmptyResults(t *testing.T) {
	var restored GachaLogEntry
	require.NoError(t, json.Unmarshal([]byte(`{"gacha_id":"g-3","result_card_ids":"","result_rarities":""}`), &restored))

	assert.Nil(t, restored.CardIDs)
	assert.Nil(t, restored.Rarities)
}

func TestHistory_AppendPrependsNewestFirst(t *testing.T) {
	history := NewHistory()

	first := PointsLogEntry{ID: "p-1"}
	second := PointsLogEntry{ID: "p-2"}
	draw := GachaLogEntry{GachaID: "g-1"}

	history = history.Append(&first, nil)
	history = history.Append(&second, &draw)

	require.Len(t, history.Points, 2)
	assert.Equal(t, "p-2", history.Points[0].ID)
	assert.Equal(t, "p-1", history.Points[1].ID)
	require.Len(t, history.Gacha, 1)
	assert.Equal(t, "g-1", history.Gacha[0].GachaID)
}

func TestHistory_AppendDoesNotMutateReceiver(t *testing.T) {
	history := NewHistory().Append(&PointsLogEntry{ID: "p-1"}, nil)

	_ = history.Append(&PointsLogEntry{ID: "p-2"}, nil)

	require.Len(t, history.Points, 1)
	assert.Equal(t, "p-1", history.Points[0].ID)
}
