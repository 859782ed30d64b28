// Package quote serves the deterministic daily writing quote shown on
// the main screen. The pick is seeded by the calendar date so every
// load on the same day shows the same line.
package quote

import "time"

var quotes = []string{
	"Inspiration flows like a spring today; the page will take care of itself.",
	"A whole world lives in the pen; every line is a landscape.",
	"The story is waiting for you. Don't keep it waiting long.",
	"Every card is fate speaking under its breath.",
	"What you draw matters less than what you write.",
	"Today's spark is tomorrow's classic.",
	"Let the words carry you somewhere you have never been.",
	"Every good story starts as a single stray thought.",
	"Turning imagination into words is the gentlest kind of magic.",
	"Today's forecast: blooming prose, flowing ideas.",
	"Inspiration is the gift; writing is the practice.",
	"Every character is waiting for you to wake them.",
	"The seed of the story is planted. Wait for it to flower.",
	"What kind of legend will you write today?",
	"Let the heart flow and the pen dance.",
}

// ForDate returns the quote for the given day.
func ForDate(t time.Time) string {
	seed := t.Year()*10000 + int(t.Month())*100 + t.Day()
	return quotes[seed%len(quotes)]
}
