package gacha

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/osse101/InkGacha_Go/internal/catalog"
	"github.com/osse101/InkGacha_Go/internal/domain"
)

// rateThreshold pairs a rarity with its configured probability.
// The order is critical: the cumulative walk runs from the rarest tier
// to the most common one.
type rateThreshold struct {
	rarity domain.Rarity
	rate   float64
}

var rateTable = []rateThreshold{
	{domain.RaritySSR, RateSSR},
	{domain.RaritySR, RateSR},
	{domain.RarityR, RateR},
	{domain.RarityN, RateN},
}

// Engine produces draw outcomes. It is a pure function of its inputs
// plus the injected randomness source, so it holds no mutable state.
type Engine struct {
	pool *catalog.Catalog
	rnd  func() float64 // uniform fraction in [0,1)
	intn func(n int) int
}

// New creates an engine backed by math/rand. It fails if the rate
// table does not sum to 1.0 - that is a programming defect, not a
// runtime condition to handle at draw time.
func New(pool *catalog.Catalog) (*Engine, error) {
	return NewWithRand(pool, rand.Float64, rand.Intn)
}

// NewWithRand creates an engine with a substitutable randomness source
// for deterministic testing.
func NewWithRand(pool *catalog.Catalog, rnd func() float64, intn func(n int) int) (*Engine, error) {
	var sum float64
	for _, rt := range rateTable {
		sum += rt.rate
	}
	if math.Abs(sum-1.0) > RateSumEpsilon {
		return nil, fmt.Errorf("rate table sums to %v, want 1.0", sum)
	}
	return &Engine{pool: pool, rnd: rnd, intn: intn}, nil
}

// RollOne resolves the rarity of a single draw given the current pity
// counter. The guarantee is evaluated before the random roll and
// overrides probability unconditionally.
func (e *Engine) RollOne(pity int) (domain.Rarity, bool) {
	if pity >= PityMax-1 {
		return domain.RaritySSR, true
	}

	roll := e.rnd()
	cumulative := 0.0
	for _, rt := range rateTable {
		cumulative += rt.rate
		if roll < cumulative {
			return rt.rarity, false
		}
	}

	// Unreachable while the table sums to 1.0; guards float edge cases.
	return domain.RarityN, false
}

// RollCard picks a uniform-random card of the given tier. The catalog
// guarantees every tier is non-empty.
func (e *Engine) RollCard(rarity domain.Rarity) domain.Card {
	tier := e.pool.ByRarity(rarity)
	return tier[e.intn(len(tier))]
}

// SortByRarity returns the cards ordered highest tier first, for the
// reveal sequence. The input order (draw order) is preserved in the
// log entries, not here.
func SortByRarity(cards []domain.Card) []domain.Card {
	sorted := append([]domain.Card(nil), cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rarity.Order() < sorted[j].Rarity.Order()
	})
	return sorted
}
