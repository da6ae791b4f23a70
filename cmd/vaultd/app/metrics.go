package app

import (
	"github.com/iov-one/weave"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator counting processed transactions, labeled by the
// processing phase, the message path and the outcome.
type Metrics struct {
	txs *prometheus.CounterVec
}

var _ weave.Decorator = (*Metrics)(nil)

// NewMetrics creates the transaction counters and registers them with
// given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	txs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "tx_total",
			Help:      "Total number of processed transactions.",
		},
		[]string{"phase", "path", "result"},
	)
	if err := reg.Register(txs); err != nil {
		return nil, err
	}
	return &Metrics{txs: txs}, nil
}

func (m *Metrics) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	res, err := next.Check(ctx, store, tx)
	m.observe("check", tx, err)
	return res, err
}

func (m *Metrics) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", tx, err)
	return res, err
}

func (m *Metrics) observe(phase string, tx weave.Tx, err error) {
	path := "unknown"
	if msg, merr := tx.GetMsg(); merr == nil && msg != nil {
		path = msg.Path()
	}
	result := "ok"
	if err != nil {
		result = "failure"
	}
	m.txs.WithLabelValues(phase, path, result).Inc()
}
