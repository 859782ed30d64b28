package gacha

// Tier probabilities. Must sum to exactly 1.0; New verifies this at
// construction time.
const (
	RateSSR = 0.01
	RateSR  = 0.05
	RateR   = 0.22
	RateN   = 0.72
)

// PityMax is the guarantee ceiling: the draw made with pity at
// PityMax-1 is forced to SSR before any randomness is consulted.
const PityMax = 120

// BatchSize is the fixed multi-draw count billed as one transaction.
const BatchSize = 10

// RateSumEpsilon bounds the float error tolerated when checking that
// the rate table sums to 1.0.
const RateSumEpsilon = 1e-9
