package domain

// Collection maps card id to owned copy count. Absence means zero
// owned; present keys always have count >= 1.
type Collection struct {
	Owned map[string]int `json:"owned"`
}

// NewCollection returns an empty collection.
func NewCollection() Collection {
	return Collection{Owned: map[string]int{}}
}

// Add merges drawn cards into the collection, one count per copy.
// Duplicates within a batch each increment independently.
func (c Collection) Add(cards []Card) Collection {
	next := Collection{Owned: make(map[string]int, len(c.Owned)+len(cards))}
	for id, n := range c.Owned {
		next.Owned[id] = n
	}
	for _, card := range cards {
		next.Owned[card.CardID]++
	}
	return next
}

// Owns reports whether at least one copy of the card is held.
func (c Collection) Owns(cardID string) bool {
	return c.Owned[cardID] > 0
}
