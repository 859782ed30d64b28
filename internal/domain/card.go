package domain

// Rarity is one of the four fixed card tiers, ordered by value.
type Rarity string

const (
	RaritySSR Rarity = "SSR"
	RaritySR  Rarity = "SR"
	RarityR   Rarity = "R"
	RarityN   Rarity = "N"
)

// Rarities lists all tiers from highest to lowest value. The draw
// engine walks this order when accumulating probabilities, so it must
// stay sorted by value.
var Rarities = []Rarity{RaritySSR, RaritySR, RarityR, RarityN}

// Valid reports whether r is one of the four known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RaritySSR, RaritySR, RarityR, RarityN:
		return true
	}
	return false
}

// Order returns the sort rank of the rarity, 0 being the most valuable.
// Unknown rarities sort last.
func (r Rarity) Order() int {
	for i, known := range Rarities {
		if r == known {
			return i
		}
	}
	return len(Rarities)
}

// Card is a single catalog entry. Cards are defined at build time and
// never mutated at runtime.
type Card struct {
	CardID string `json:"card_id"`
	Pool   string `json:"pool"`
	Rarity Rarity `json:"rarity"`
	Title  string `json:"title"`
	Flavor string `json:"flavor"`
	Prompt string `json:"prompt"`
}
