package session

// Draw costs. A draw is billed in exactly one currency: tickets are
// preferred whenever enough are held, otherwise the full point cost.
const (
	CostSingleTickets = 1
	CostSinglePoints  = 10
	CostTenTickets    = 10
	CostTenPoints     = 90
)

// Reward credit amounts.
const (
	RewardSynopsisPoints = 15
	RewardWritingPoints  = 20
)

// Movement-log action labels.
const (
	ActionSingleDraw = "single draw"
	ActionTenDraw    = "ten draw"
	ActionFreeDraw   = "free draw"
	ActionSynopsis   = "synopsis"
	ActionWriting    = "writing submission"
)

// DateFormat is the calendar-date form used for the daily boundary.
const DateFormat = "2006-01-02"

// Log message constants
const (
	LogMsgDailyRollover      = "Daily rollover applied"
	LogMsgRolloverSaveFailed = "Failed to persist daily rollover"
	LogMsgDrawCommitted      = "Draw committed"
	LogMsgRewardClaimed      = "Reward claimed"
	LogMsgSnapshotImported   = "Snapshot imported"
)
