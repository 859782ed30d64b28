package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDrawsTotal      = "draws_total"
	MetricNameCardsDrawn      = "cards_drawn_total"
	MetricNamePityTriggered   = "pity_triggered_total"
	MetricNameRewardsClaimed  = "rewards_claimed_total"
	MetricNamePointsEarned    = "points_earned_total"
	MetricNamePointsSpent     = "points_spent_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextDrawsTotal     = "Total number of draw transactions"
	HelpTextCardsDrawn     = "Total number of cards drawn"
	HelpTextPityTriggered  = "Total number of draws where the pity guarantee fired"
	HelpTextRewardsClaimed = "Total number of reward claims"
	HelpTextPointsEarned   = "Total points credited by rewards"
	HelpTextPointsSpent    = "Total points spent on draws"
)

// Metric label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelRarity = "rarity"
	LabelKind   = "kind"
)

// HTTPLatencyBuckets covers the sub-millisecond to seconds range this
// service operates in.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
