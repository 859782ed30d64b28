package gacha

import "github.com/osse101/InkGacha_Go/internal/domain"

// BatchResult aggregates the outcomes of a multi-draw sequence.
type BatchResult struct {
	Cards         []domain.Card // draw order
	Rarities      []domain.Rarity
	PityAfter     int
	HasSSR        bool
	PityTriggered bool // guarantee fired at least once in the batch
}

// RollBatch runs count sequential draws, threading the pity counter
// between them: an SSR resets the running pity to zero immediately, so
// a guarantee firing mid-batch affects the draws after it.
func (e *Engine) RollBatch(startingPity, count int) BatchResult {
	result := BatchResult{
		Cards:     make([]domain.Card, 0, count),
		Rarities:  make([]domain.Rarity, 0, count),
		PityAfter: startingPity,
	}

	for i := 0; i < count; i++ {
		rarity, triggered := e.RollOne(result.PityAfter)
		card := e.RollCard(rarity)

		result.Cards = append(result.Cards, card)
		result.Rarities = append(result.Rarities, rarity)

		if rarity == domain.RaritySSR {
			result.HasSSR = true
			if triggered {
				result.PityTriggered = true
			}
			result.PityAfter = 0
		} else {
			result.PityAfter++
		}
	}

	return result
}
