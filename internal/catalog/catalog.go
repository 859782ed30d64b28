package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/InkGacha_Go/internal/domain"
)

// Sentinel errors for catalog construction
var (
	ErrDuplicateCardID = errors.New("duplicate card id")

	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

//go:embed configs/cards.json
var cardsJSON []byte

// Config represents the JSON configuration for the card pool
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`

	Cards []domain.Card `json:"cards"`
}

// Catalog is the immutable card pool, indexed by id and rarity.
type Catalog struct {
	cards    []domain.Card
	byID     map[string]domain.Card
	byRarity map[domain.Rarity][]domain.Card
}

// Load builds the catalog from the embedded pool config. Invariant
// violations (duplicate ids, unknown rarity, empty tier) are
// programming-contract defects and fail construction so the process
// stops at startup rather than at draw time.
func Load() (*Catalog, error) {
	return loadBytes(cardsJSON)
}

func loadBytes(data []byte) (*Catalog, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse card pool: %w", err)
	}
	return New(config.Cards)
}

// New builds a catalog from an explicit card list, validating the pool
// invariants. Used directly by tests that need small fixed pools.
func New(cards []domain.Card) (*Catalog, error) {
	c := &Catalog{
		cards:    cards,
		byID:     make(map[string]domain.Card, len(cards)),
		byRarity: make(map[domain.Rarity][]domain.Card, len(domain.Rarities)),
	}

	for _, card := range cards {
		if !card.Rarity.Valid() {
			return nil, fmt.Errorf("%w: card %q has unknown rarity %q", ErrInvalidConfig, card.CardID, card.Rarity)
		}
		if card.CardID == "" {
			return nil, fmt.Errorf("%w: card with empty id", ErrInvalidConfig)
		}
		if _, exists := c.byID[card.CardID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCardID, card.CardID)
		}
		c.byID[card.CardID] = card
		c.byRarity[card.Rarity] = append(c.byRarity[card.Rarity], card)
	}

	// Every tier must be drawable
	for _, rarity := range domain.Rarities {
		if len(c.byRarity[rarity]) == 0 {
			return nil, fmt.Errorf("%w: rarity %s has no cards", ErrInvalidConfig, rarity)
		}
	}

	return c, nil
}

// ByID looks up a card by id.
func (c *Catalog) ByID(id string) (domain.Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// ByRarity returns the cards of a tier in config order. The returned
// slice is shared; callers must not mutate it.
func (c *Catalog) ByRarity(rarity domain.Rarity) []domain.Card {
	return c.byRarity[rarity]
}

// Cards returns the full pool in config order.
func (c *Catalog) Cards() []domain.Card {
	return c.cards
}

// Size returns the number of cards in the pool.
func (c *Catalog) Size() int {
	return len(c.cards)
}
