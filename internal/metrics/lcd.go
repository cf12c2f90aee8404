// Package metrics provides Prometheus metrics for display writes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smazurov/lcdctl/internal/events"
)

var (
	paramWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "param_writes_total",
		Help:      "Successful driver parameter writes",
	}, []string{"param"})

	textWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "text_writes_total",
		Help:      "Successful writes to the display device",
	})

	textBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "text_bytes_total",
		Help:      "Bytes written to the display device",
	})

	writeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "write_failures_total",
		Help:      "Failed parameter or text writes",
	}, []string{"target"})

	clears = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "clears_total",
		Help:      "Clear requests accepted by the driver",
	})

	lastWrite = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lcdctl",
		Subsystem: "lcd",
		Name:      "last_write_timestamp_seconds",
		Help:      "Unix time of the last successful write",
	})
)

// Subscribe feeds display events from bus into the Prometheus metrics.
// Returns a function that removes every subscription.
func Subscribe(bus *events.Bus) func() {
	unsubscribers := []func(){
		bus.Subscribe(func(e events.ParamWrittenEvent) {
			paramWrites.WithLabelValues(e.Param).Inc()
			lastWrite.SetToCurrentTime()
		}),
		bus.Subscribe(func(e events.TextWrittenEvent) {
			textWrites.Inc()
			textBytes.Add(float64(e.Bytes))
			lastWrite.SetToCurrentTime()
		}),
		bus.Subscribe(func(e events.WriteFailedEvent) {
			writeFailures.WithLabelValues(e.Target).Inc()
		}),
		bus.Subscribe(func(events.DisplayClearedEvent) {
			clears.Inc()
		}),
	}

	return func() {
		for _, unsub := range unsubscribers {
			unsub()
		}
	}
}

// Handler serves every promauto-registered metric in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
