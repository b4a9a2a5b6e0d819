// Package metrics exposes Prometheus counters for wagers and settlements.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	betsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_placed_total",
			Help: "Total accepted bets by game",
		},
		[]string{"game"},
	)

	betsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_rejected_total",
			Help: "Total rejected bets by game and reason",
		},
		[]string{"game", "reason"},
	)

	roundsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_settled_total",
			Help: "Total settled rounds by game and result",
		},
		[]string{"game", "result"},
	)

	chipsStaked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_chips_staked_total",
			Help: "Total chips staked by game",
		},
		[]string{"game"},
	)

	chipsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_chips_paid_total",
			Help: "Total chips returned to players by game",
		},
		[]string{"game"},
	)
)

// RecordBet counts an accepted bet.
func RecordBet(game string) {
	betsPlaced.WithLabelValues(game).Inc()
}

// RecordBetRejected counts a rejected bet. reason is "invalid" or
// "insufficient_funds".
func RecordBetRejected(game, reason string) {
	betsRejected.WithLabelValues(game, reason).Inc()
}

// RecordRound counts a settled round and its chip flow.
func RecordRound(game string, staked, won int64) {
	result := "loss"
	switch {
	case won > staked:
		result = "win"
	case won == staked:
		result = "push"
	}
	roundsSettled.WithLabelValues(game, result).Inc()
	chipsStaked.WithLabelValues(game).Add(float64(staked))
	chipsPaid.WithLabelValues(game).Add(float64(won))
}
