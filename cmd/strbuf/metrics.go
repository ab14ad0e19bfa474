package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	lines     prometheus.Counter
	truncated prometheus.Counter
	invalid   prometheus.Counter
	rejected  prometheus.Counter
	bytes     prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "lines",
			Help:      "Number of lines read",
		}),
		truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "lines_truncated",
			Help:      "Number of lines that didn't fit and were cut on a character boundary",
		}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "lines_invalid",
			Help:      "Number of lines cut at invalid UTF-8",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "lines_rejected",
			Help:      "Number of lines rejected in strict mode",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_written",
			Help:      "Number of bytes written into buffers",
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "strbuf"},
			registerer,
		)
		registerer.MustRegister(
			m.lines,
			m.truncated,
			m.invalid,
			m.rejected,
			m.bytes,
		)
	}

	return &m
}
