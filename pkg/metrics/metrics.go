// Package metrics exposes Prometheus metrics for the sync loops.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sidkik/logloader/pkg/errors"
)

// Result labels.
const (
	Success   = "success"
	Failure   = "failure"
	Cancelled = "cancelled"
)

var (
	// Downloads counts finished log downloads by result.
	Downloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logloader_downloads_total",
		Help: "Log downloads from the flight controller, by result.",
	}, []string{"result"})

	// DownloadedBytes counts the bytes of successfully downloaded logs.
	DownloadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logloader_downloaded_bytes_total",
		Help: "Bytes of logs downloaded from the flight controller.",
	})

	// DownloadRate is the transfer rate of the most recent download.
	DownloadRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "logloader_download_rate_kbps",
		Help: "Estimated transfer rate of the current or last download.",
	})

	// Uploads counts upload attempts by result.
	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logloader_uploads_total",
		Help: "Log uploads to the archive, by result.",
	}, []string{"result"})

	// Armed is 1 while the vehicle is armed and syncing is suspended.
	Armed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "logloader_vehicle_armed",
		Help: "Whether the vehicle was armed when last polled.",
	})
)

// SetArmed records the polled armed state.
func SetArmed(armed bool) {
	if armed {
		Armed.Set(1)
	} else {
		Armed.Set(0)
	}
}

// Serve exposes the metrics on `address` at /metrics. It blocks until the
// server fails.
func Serve(address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(address, mux); err != nil {
		return errors.WithContext(err, "serve metrics")
	}
	return nil
}
