package netcode

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Frame-layer metrics. Exposed on the app's /metrics endpoint.
var (
	framesRead = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "frames_read_total",
		Help:      "Total frames decoded from peers",
	})

	framesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "frames_written_total",
		Help:      "Total frames encoded to peers",
	})

	framesCompressed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "frames_compressed_total",
		Help:      "Outbound frames that crossed the compression threshold",
	})

	framesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "frames_rejected_total",
		Help:      "Inbound frames dropped as oversized or malformed",
	})

	bytesRead = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "bytes_read_total",
		Help:      "Total frame bytes read",
	})

	bytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "bytes_written_total",
		Help:      "Total frame bytes written",
	})

	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pumpkin",
		Subsystem: "netcode",
		Name:      "active_connections",
		Help:      "Connections currently held open",
	})
)
