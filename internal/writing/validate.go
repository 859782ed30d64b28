// Package writing checks daily writing submissions for low-effort
// padding before the reward claim is allowed through.
package writing

import "strings"

const (
	// MinContentLength is the minimum rune count for a valid submission.
	MinContentLength = 300

	// MaxRepeatRatio is the highest share of the text a single rune may
	// occupy before the submission counts as repeated filler.
	MaxRepeatRatio = 0.3

	// MaxRunLength is the longest allowed run of one repeated rune.
	MaxRunLength = 9
)

// Refusal reasons reported to the caller for user messaging.
const (
	ReasonTooShort     = "content shorter than 300 characters"
	ReasonRepeated     = "repeated content detected"
	ReasonLongRun      = "run of repeated characters detected"
)

// Result reports whether a submission passes the content checks.
type Result struct {
	Valid  bool
	Reason string
}

// Validate runs the anti-spam content checks: minimum length, single
// character frequency, and consecutive run length. Counting is by
// rune, not byte, so multibyte scripts are not penalized.
func Validate(content string) Result {
	runes := []rune(content)
	if len(runes) < MinContentLength {
		return Result{Reason: ReasonTooShort}
	}

	counts := make(map[rune]int)
	maxCount := 0
	for _, r := range runes {
		counts[r]++
		if counts[r] > maxCount {
			maxCount = counts[r]
		}
	}
	if float64(maxCount) > float64(len(runes))*MaxRepeatRatio {
		return Result{Reason: ReasonRepeated}
	}

	if longestRun(runes) > MaxRunLength {
		return Result{Reason: ReasonLongRun}
	}

	return Result{Valid: true}
}

func longestRun(runes []rune) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range runes {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = r
	}
	return longest
}

// Normalize trims surrounding whitespace before validation, so a
// submission padded with blank lines is measured by its real content.
func Normalize(content string) string {
	return strings.TrimSpace(content)
}
