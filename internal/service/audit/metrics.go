package audit

import "github.com/prometheus/client_golang/prometheus"

// Drop reasons used as the "reason" label of audit_entries_dropped_total.
const (
	dropQueueFull   = "queue_full"
	dropWriteFailed = "write_failed"
	dropActorGone   = "actor_gone"

	dropWriterStopped = "writer_stopped"
	dropDrainTimeout  = "drain_timeout"
)

type recorderMetrics struct {
	enqueued prometheus.Counter
	written  prometheus.Counter
	dropped  *prometheus.CounterVec
}

func newRecorderMetrics(reg prometheus.Registerer, depth func() float64) *recorderMetrics {
	m := &recorderMetrics{
		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_enqueued_total",
			Help: "Audit entries accepted onto the write queue.",
		}),
		written: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_written_total",
			Help: "Audit entries persisted.",
		}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_entries_dropped_total",
			Help: "Audit entries that were never persisted.",
		}, []string{"reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.enqueued, m.written, m.dropped,
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "audit_queue_depth",
				Help: "Audit entries waiting to be written.",
			}, depth),
		)
	}
	return m
}
