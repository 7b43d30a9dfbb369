package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "pool_ledger"

// Reservation outcomes. Each is recorded once the change it describes has
// committed.
const (
	ReservationReserved      = "reserved"
	ReservationRejected      = "rejected"
	ReservationCommitted     = "committed"
	ReservationReleased      = "released"
	ReservationCommitFailed  = "commit_failed"
	ReservationReleaseFailed = "release_failed"
)

type Metrics struct {
	reservations        *prometheus.CounterVec
	poolBalance         *prometheus.GaugeVec
	poolSyncOutOfBounds prometheus.Counter
	discrepancies       *prometheus.CounterVec
	jobRuns             *prometheus.CounterVec
	payouts             *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation lifecycle events by outcome.",
		}, []string{"outcome"}),
		poolBalance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_balance",
			Help:      "Pool account figures.",
		}, []string{"figure"}),
		poolSyncOutOfBounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_sync_out_of_tolerance_total",
			Help:      "Gateway syncs whose balance jump exceeded tolerance.",
		}),
		discrepancies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_discrepancies_total",
			Help:      "Reconciliation discrepancies by scope and severity.",
		}, []string{"scope", "severity"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by result.",
		}, []string{"job", "result"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_total",
			Help:      "Resolved payout requests by status.",
		}, []string{"status"}),
	}

	registerer.MustRegister(
		m.reservations,
		m.poolBalance,
		m.poolSyncOutOfBounds,
		m.discrepancies,
		m.jobRuns,
		m.payouts,
	)

	return m
}

func (m *Metrics) Reservation(outcome string) {
	m.reservations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PoolFigures(total, allocated, reserved, unallocated, unsettled decimal.Decimal) {
	m.poolBalance.WithLabelValues("total").Set(total.InexactFloat64())
	m.poolBalance.WithLabelValues("allocated").Set(allocated.InexactFloat64())
	m.poolBalance.WithLabelValues("reserved").Set(reserved.InexactFloat64())
	m.poolBalance.WithLabelValues("unallocated").Set(unallocated.InexactFloat64())
	m.poolBalance.WithLabelValues("unsettled").Set(unsettled.InexactFloat64())
}

func (m *Metrics) PoolSyncOutOfTolerance() {
	m.poolSyncOutOfBounds.Inc()
}

func (m *Metrics) Discrepancy(scope, severity string) {
	m.discrepancies.WithLabelValues(scope, severity).Inc()
}

func (m *Metrics) JobRun(job, result string) {
	m.jobRuns.WithLabelValues(job, result).Inc()
}

func (m *Metrics) Payout(status string) {
	m.payouts.WithLabelValues(status).Inc()
}
