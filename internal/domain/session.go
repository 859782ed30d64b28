package domain

// DefaultUsername is the display name assigned until the user picks one.
const DefaultUsername = "Traveler"

// Starting balances for a fresh session.
const (
	StartingPoints  = 100
	StartingTickets = 5
)

// MaxSelectedCards caps the focus-card selection set.
const MaxSelectedCards = 3

// MaxSynopsisPerDay caps the synopsis reward uses per calendar day.
const MaxSynopsisPerDay = 2

// SessionState is the single mutable resource ledger for the session.
// Every transition replaces the record as a whole; nothing outside the
// session service mutates individual fields.
type SessionState struct {
	Username         string   `json:"username"`
	Points           int      `json:"points"`
	Tickets          int      `json:"tickets"`
	PitySSR          int      `json:"pitySSR"`
	FreeDrawToday    bool     `json:"freeDrawToday"`
	TodaySSR         bool     `json:"todaySSR"`
	LastActiveDate   string   `json:"lastActiveDate"` // YYYY-MM-DD, local calendar date
	SynopsisCount    int      `json:"synopsisCountToday"`
	WritingSubmitted bool     `json:"writingSubmitToday"`
	SelectedCards    []string `json:"selectedCards"`
}

// NewSessionState returns the default state for a first-time session.
func NewSessionState(today string) SessionState {
	return SessionState{
		Username:       DefaultUsername,
		Points:         StartingPoints,
		Tickets:        StartingTickets,
		PitySSR:        0,
		FreeDrawToday:  true,
		TodaySSR:       false,
		LastActiveDate: today,
		SelectedCards:  []string{},
	}
}

// Clone returns a deep copy so transitions can build the next state
// without aliasing the current one.
func (s SessionState) Clone() SessionState {
	next := s
	next.SelectedCards = append([]string(nil), s.SelectedCards...)
	return next
}

// Rollover returns the state after the stale→current daily transition.
// It resets only the per-day flags and counters; balances, pity and the
// selection set carry over. Calling it with today == LastActiveDate is
// a no-op.
func (s SessionState) Rollover(today string) (SessionState, bool) {
	if s.LastActiveDate == today {
		return s, false
	}
	next := s.Clone()
	next.FreeDrawToday = true
	next.TodaySSR = false
	next.SynopsisCount = 0
	next.WritingSubmitted = false
	next.LastActiveDate = today
	return next, true
}

// IsSelected reports membership in the focus-card selection set.
func (s SessionState) IsSelected(cardID string) bool {
	for _, id := range s.SelectedCards {
		if id == cardID {
			return true
		}
	}
	return false
}
