package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BowlingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bowling_client_requests_total",
			Help: "Round trips to the bowling service by operation and HTTP status (0 = transport error)",
		},
		[]string{"op", "code"},
	)
	BowlingLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bowling_client_request_duration_seconds",
			Help:    "Latency of bowling service round trips",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	LaneEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lane_webhook_events_total",
			Help: "Lane webhook events by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(BowlingRequests)
	prometheus.MustRegister(BowlingLatency)
	prometheus.MustRegister(LaneEvents)
}

// ObserveBowling tiene la firma de bowling.Observer.
func ObserveBowling(op string, status int, d time.Duration) {
	BowlingRequests.WithLabelValues(op, strconv.Itoa(status)).Inc()
	BowlingLatency.WithLabelValues(op).Observe(d.Seconds())
}
