// Package logmetrics instruments the byte transport below a logger.WriterSink
// with Prometheus counters. It is the place to notice lost records: the
// logger itself never reports sink failures.
package logmetrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the sink counters.
type Metrics struct {
	Records       prometheus.Counter
	Bytes         prometheus.Counter
	WriteFailures prometheus.Counter
}

// New registers the counters with reg. Pass prometheus.DefaultRegisterer to
// expose them through promhttp.Handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Records: f.NewCounter(prometheus.CounterOpts{
			Name: "modlogger_records_total",
			Help: "The total number of log records written to the sink",
		}),
		Bytes: f.NewCounter(prometheus.CounterOpts{
			Name: "modlogger_bytes_total",
			Help: "The total number of bytes written to the sink",
		}),
		WriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "modlogger_write_failures_total",
			Help: "The total number of failed sink writes",
		}),
	}
}

// Writer wraps w so every write is counted. WriterSink issues exactly one
// Write per record, so each successful Write counts as one record whatever
// newlines it contains.
func (m *Metrics) Writer(w io.Writer) io.Writer {
	return &countingWriter{w: w, m: m}
}

// ObserveFailure counts a failed write. It fits logger.WriterSink.OnError.
func (m *Metrics) ObserveFailure(error) {
	m.WriteFailures.Inc()
}

type countingWriter struct {
	w io.Writer
	m *Metrics
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if n > 0 {
		c.m.Bytes.Add(float64(n))
	}
	if err == nil {
		c.m.Records.Inc()
	}
	return n, err
}
