package metrics

import (
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every fundchain metric
const Namespace = "fundchain"

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all fundchain metrics
type Collector struct {
	// Lifecycle metrics
	FundsByStatus     *prometheus.GaugeVec
	StatusTransitions *prometheus.CounterVec
	SharesOutstanding *prometheus.GaugeVec

	// Purchase metrics
	BuysTotal *prometheus.CounterVec
	BuyShares *prometheus.CounterVec
	BuyValue  *prometheus.CounterVec

	// Redemption metrics
	RedemptionsTotal *prometheus.CounterVec
	RedemptionShares *prometheus.CounterVec
	RedemptionPayout *prometheus.CounterVec

	// Bonus metrics
	BonusDistributions *prometheus.CounterVec
	BonusAmount        *prometheus.CounterVec
	BonusDrawn         *prometheus.CounterVec

	// Lock metrics
	LockOperations *prometheus.CounterVec

	// Message metrics
	MsgsTotal  *prometheus.CounterVec
	MsgLatency *prometheus.HistogramVec

	// Operator metrics
	OperatorActions       *prometheus.CounterVec
	OperatorSubmitLatency *prometheus.HistogramVec
	OperatorQueueDepth    prometheus.Gauge

	// System metrics
	BlockHeight prometheus.Gauge
	BlockTime   *prometheus.HistogramVec
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
	})
	return collector
}

// newCollector creates a new metrics collector
func newCollector() *Collector {
	c := &Collector{}

	// Lifecycle metrics
	c.FundsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "funds",
			Name:      "by_status",
			Help:      "Number of funds in each lifecycle status",
		},
		[]string{"status"},
	)

	c.StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "funds",
			Name:      "status_transitions_total",
			Help:      "Lifecycle transitions by target status",
		},
		[]string{"fund_id", "status"},
	)

	c.SharesOutstanding = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "funds",
			Name:      "shares_outstanding",
			Help:      "Total share supply of a fund",
		},
		[]string{"fund_id"},
	)

	// Purchase metrics
	c.BuysTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "purchases",
			Name:      "total",
			Help:      "Number of share purchases",
		},
		[]string{"fund_id"},
	)

	c.BuyShares = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "purchases",
			Name:      "shares",
			Help:      "Shares sold",
		},
		[]string{"fund_id"},
	)

	c.BuyValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "purchases",
			Name:      "value",
			Help:      "Settlement tokens paid for shares",
		},
		[]string{"fund_id", "denom"},
	)

	// Redemption metrics
	c.RedemptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "redemptions",
			Name:      "total",
			Help:      "Number of redemptions",
		},
		[]string{"fund_id"},
	)

	c.RedemptionShares = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "redemptions",
			Name:      "shares",
			Help:      "Shares burned by redemption",
		},
		[]string{"fund_id"},
	)

	c.RedemptionPayout = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "redemptions",
			Name:      "payout",
			Help:      "Settlement tokens paid out by redemption",
		},
		[]string{"fund_id", "denom"},
	)

	// Bonus metrics
	c.BonusDistributions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "bonus",
			Name:      "distributions_total",
			Help:      "Number of profit distributions",
		},
		[]string{"fund_id"},
	)

	c.BonusAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "bonus",
			Name:      "amount",
			Help:      "Distributed profit by recipient class",
		},
		[]string{"fund_id", "recipient"},
	)

	c.BonusDrawn = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "bonus",
			Name:      "drawn",
			Help:      "Bonus paid out to holders",
		},
		[]string{"fund_id", "denom"},
	)

	// Lock metrics
	c.LockOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "locks",
			Name:      "operations_total",
			Help:      "Lock registry operations",
		},
		[]string{"fund_id", "operation"},
	)

	// Message metrics
	c.MsgsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "msgs",
			Name:      "total",
			Help:      "Fund messages handled",
		},
		[]string{"msg", "result"},
	)

	c.MsgLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "msgs",
			Name:      "latency_ms",
			Help:      "Fund message handling latency in milliseconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		},
		[]string{"msg"},
	)

	// Operator metrics
	c.OperatorActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "operator",
			Name:      "actions_total",
			Help:      "Lifecycle actions submitted by the operator",
		},
		[]string{"action", "result"},
	)

	c.OperatorSubmitLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "operator",
			Name:      "submit_latency_ms",
			Help:      "Operator submission latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"action"},
	)

	c.OperatorQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "operator",
			Name:      "queue_depth",
			Help:      "Planned actions waiting to become due",
		},
	)

	// System metrics
	c.BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "system",
			Name:      "block_height",
			Help:      "Current block height",
		},
	)

	c.BlockTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "system",
			Name:      "block_phase_ms",
			Help:      "Time spent in block phases in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"phase"},
	)

	// Register all metrics
	c.registerAll()

	return c
}

// registerAll registers all metrics with Prometheus
func (c *Collector) registerAll() {
	// Lifecycle metrics
	prometheus.MustRegister(c.FundsByStatus)
	prometheus.MustRegister(c.StatusTransitions)
	prometheus.MustRegister(c.SharesOutstanding)

	// Purchase metrics
	prometheus.MustRegister(c.BuysTotal)
	prometheus.MustRegister(c.BuyShares)
	prometheus.MustRegister(c.BuyValue)

	// Redemption metrics
	prometheus.MustRegister(c.RedemptionsTotal)
	prometheus.MustRegister(c.RedemptionShares)
	prometheus.MustRegister(c.RedemptionPayout)

	// Bonus metrics
	prometheus.MustRegister(c.BonusDistributions)
	prometheus.MustRegister(c.BonusAmount)
	prometheus.MustRegister(c.BonusDrawn)

	// Lock metrics
	prometheus.MustRegister(c.LockOperations)

	// Message metrics
	prometheus.MustRegister(c.MsgsTotal)
	prometheus.MustRegister(c.MsgLatency)

	// Operator metrics
	prometheus.MustRegister(c.OperatorActions)
	prometheus.MustRegister(c.OperatorSubmitLatency)
	prometheus.MustRegister(c.OperatorQueueDepth)

	// System metrics
	prometheus.MustRegister(c.BlockHeight)
	prometheus.MustRegister(c.BlockTime)
}

// ============ Recording Helpers ============

// RecordStatus records a lifecycle transition
func (c *Collector) RecordStatus(fundID, status string) {
	c.StatusTransitions.WithLabelValues(fundID, status).Inc()
}

// UpdateFundGauges replaces the per-status fund counts
func (c *Collector) UpdateFundGauges(byStatus map[string]int) {
	c.FundsByStatus.Reset()
	for status, n := range byStatus {
		c.FundsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// RecordSupply records the share supply of a fund
func (c *Collector) RecordSupply(fundID string, shares math.Int) {
	c.SharesOutstanding.WithLabelValues(fundID).Set(IntToFloat(shares))
}

// RecordBuy records a share purchase
func (c *Collector) RecordBuy(fundID, denom string, share, cost math.Int) {
	c.BuysTotal.WithLabelValues(fundID).Inc()
	c.BuyShares.WithLabelValues(fundID).Add(IntToFloat(share))
	c.BuyValue.WithLabelValues(fundID, denom).Add(IntToFloat(cost))
}

// RecordRedemption records a redemption
func (c *Collector) RecordRedemption(fundID, denom string, share, payout math.Int) {
	c.RedemptionsTotal.WithLabelValues(fundID).Inc()
	c.RedemptionShares.WithLabelValues(fundID).Add(IntToFloat(share))
	c.RedemptionPayout.WithLabelValues(fundID, denom).Add(IntToFloat(payout))
}

// RecordBonus records one profit distribution
func (c *Collector) RecordBonus(fundID string, protocolFee, managers, sponsor, users math.Int) {
	c.BonusDistributions.WithLabelValues(fundID).Inc()
	c.BonusAmount.WithLabelValues(fundID, "protocol").Add(IntToFloat(protocolFee))
	c.BonusAmount.WithLabelValues(fundID, "managers").Add(IntToFloat(managers))
	c.BonusAmount.WithLabelValues(fundID, "sponsor").Add(IntToFloat(sponsor))
	c.BonusAmount.WithLabelValues(fundID, "users").Add(IntToFloat(users))
}

// RecordBonusDrawn records bonus paid to a holder
func (c *Collector) RecordBonusDrawn(fundID, denom string, amount math.Int) {
	c.BonusDrawn.WithLabelValues(fundID, denom).Add(IntToFloat(amount))
}

// RecordLock records a lock registry operation
func (c *Collector) RecordLock(fundID, operation string) {
	c.LockOperations.WithLabelValues(fundID, operation).Inc()
}

// RecordMsg records a handled fund message
func (c *Collector) RecordMsg(msg string, err error, latencyMs float64) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.MsgsTotal.WithLabelValues(msg, result).Inc()
	c.MsgLatency.WithLabelValues(msg).Observe(latencyMs)
}

// RecordOperatorAction records an action submitted by the operator
func (c *Collector) RecordOperatorAction(action, result string, latencyMs float64) {
	c.OperatorActions.WithLabelValues(action, result).Inc()
	c.OperatorSubmitLatency.WithLabelValues(action).Observe(latencyMs)
}

// SetOperatorQueueDepth records the number of planned actions
func (c *Collector) SetOperatorQueueDepth(n int) {
	c.OperatorQueueDepth.Set(float64(n))
}

// RecordBlockPhase records the time spent in a block phase
func (c *Collector) RecordBlockPhase(phase string, latencyMs float64) {
	c.BlockTime.WithLabelValues(phase).Observe(latencyMs)
}

// UpdateBlockHeight records the current block height
func (c *Collector) UpdateBlockHeight(height int64) {
	c.BlockHeight.Set(float64(height))
}

// IntToFloat converts an integer amount for gauges and counters. Precision
// loss above 2^53 is acceptable for monitoring.
func IntToFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	f, err := v.ToLegacyDec().Float64()
	if err != nil {
		return 0
	}
	return f
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
