package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draw refusals
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgFreeDrawUsed      = "free draw already used today"

	// Reward refusals
	ErrMsgQuotaExhausted = "daily quota exhausted"

	// Selection errors
	ErrMsgCardNotOwned  = "card not owned"
	ErrMsgSelectionFull = "selection is full"

	// Catalog errors
	ErrMsgCardNotFound = "card not found"

	// Import errors
	ErrMsgInvalidBundle = "invalid snapshot bundle"
)

// Common domain errors.
// Refusals (precondition not met) use these sentinels so handlers can
// map them without string matching. Wrap with
// fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrFreeDrawUsed      = errors.New(ErrMsgFreeDrawUsed)
	ErrQuotaExhausted    = errors.New(ErrMsgQuotaExhausted)
	ErrCardNotOwned      = errors.New(ErrMsgCardNotOwned)
	ErrSelectionFull     = errors.New(ErrMsgSelectionFull)
	ErrCardNotFound      = errors.New(ErrMsgCardNotFound)
	ErrInvalidBundle     = errors.New(ErrMsgInvalidBundle)
)
