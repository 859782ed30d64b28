package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/InkGacha_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelMode},
	)

	CardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsDrawn,
			Help: HelpTextCardsDrawn,
		},
		[]string{LabelRarity},
	)

	PityTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePityTriggered,
			Help: HelpTextPityTriggered,
		},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelKind},
	)

	PointsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsEarned,
			Help: HelpTextPointsEarned,
		},
	)

	PointsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsSpent,
			Help: HelpTextPointsSpent,
		},
	)
)

// RecordDraw tracks one committed draw transaction.
func RecordDraw(mode domain.DrawMode, rarities []domain.Rarity, pityFired bool) {
	DrawsTotal.WithLabelValues(string(mode)).Inc()
	for _, r := range rarities {
		CardsDrawn.WithLabelValues(string(r)).Inc()
	}
	if pityFired {
		PityTriggered.Inc()
	}
}

// RecordReward tracks one committed reward claim.
func RecordReward(kind string, points int) {
	RewardsClaimed.WithLabelValues(kind).Inc()
	PointsEarned.Add(float64(points))
}

// RecordPointsSpent tracks point debits from draws.
func RecordPointsSpent(points int) {
	PointsSpent.Add(float64(points))
}
