package sync

import (
	"context"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/sidkik/logloader/pkg/errors"
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
	"github.com/sidkik/logloader/pkg/metrics"
)

const (
	// armedPollInterval is how often the armed state is polled while the
	// vehicle is armed.
	armedPollInterval = 1 * time.Second

	// disarmGracePeriod gives the flight controller time to finish writing
	// its log after the vehicle disarms.
	disarmGracePeriod = 3 * time.Second

	listRetryInterval = 1 * time.Second
	listTimeout       = 30 * time.Second

	// downloadInterval is how often the flight controller is polled for new
	// logs.
	downloadInterval = 10 * time.Second
)

func (e *Engine) runDownloads() {
	for !e.signal.Stopped() {
		if !e.waitUntilDisarmed() {
			return
		}

		entries, err := e.listLogEntries()
		if err != nil {
			e.log.WithError(err).Warn("Failed to list logs. Will retry.")
			e.signal.Sleep(e.clock, listRetryInterval)
			continue
		}

		switch err := e.downloadLogs(entries); {
		case err == errors.ErrVehicleArmed:
			e.log.Info("Vehicle armed. Deferring the remaining downloads.")
		case err == errors.ErrTransferCancelled:
			return
		case err != nil:
			e.log.WithError(err).Warn("Failed to sync logs")
		}

		e.signal.Sleep(e.clock, downloadInterval)
	}
}

// waitUntilDisarmed blocks while the vehicle is armed. It returns false if
// the engine is stopped while waiting.
func (e *Engine) waitUntilDisarmed() bool {
	wasArmed := false
	for e.isArmed() {
		wasArmed = true
		if !e.signal.Sleep(e.clock, armedPollInterval) {
			return false
		}
	}

	if e.signal.Stopped() {
		return false
	}

	if wasArmed {
		e.log.Info("Vehicle disarmed. Waiting for the flight controller to finish writing its log.")
		return e.signal.Sleep(e.clock, disarmGracePeriod)
	}
	return true
}

func (e *Engine) listLogEntries() ([]fc.LogEntry, error) {
	e.log.Debug("Requesting log list")
	ctx, cancel := context.WithTimeout(e.signal.Context(), listTimeout)
	defer cancel()

	entries, err := e.flightController.ListLogEntries(ctx)
	if err != nil {
		return nil, err
	}

	e.log.Infof("Found %d logs", len(entries))
	for _, entry := range entries {
		e.log.WithFields(logrus.Fields{
			"id":   entry.ID,
			"date": entry.Date,
			"size": humanize.Bytes(entry.SizeBytes),
		}).Debug("Remote log")
	}
	return entries, nil
}

// downloadLogs downloads the remote logs that are missing or incomplete
// locally, in the order they were listed. It stops early and returns
// ErrVehicleArmed or ErrTransferCancelled if the vehicle arms or the engine
// is stopped. Failed downloads are logged and retried on the next pass.
func (e *Engine) downloadLogs(entries []fc.LogEntry) error {
	local, err := SnapshotLocal(e.fs, e.logsDir)
	if err != nil {
		return errors.WithContext(err, "snapshot local logs")
	}

	if _, ok := local.Latest(); !ok && len(entries) != 0 {
		e.log.Info("No local logs found. Downloading the most recent log.")
	}

	for _, decision := range local.Reconcile(e.logsDir, entries) {
		if !decision.NeedsDownload() {
			continue
		}

		if e.signal.Stopped() {
			return errors.ErrTransferCancelled
		}

		if e.isArmed() {
			return errors.ErrVehicleArmed
		}

		if decision.Action == Incomplete {
			e.log.WithFields(logrus.Fields{
				"path":      decision.Path,
				"size":      decision.Entry.SizeBytes,
				"localSize": decision.LocalSize,
			}).Info("Incomplete log. Redownloading.")

			if err := e.fs.Remove(decision.Path); err != nil && !os.IsNotExist(err) {
				e.log.WithError(err).WithField("path", decision.Path).Warn(
					"Failed to remove incomplete log. Will retry.")
				continue
			}
		}

		err := e.download(decision.Entry, decision.Path)
		switch {
		case err == errors.ErrTransferCancelled:
			return err
		case err != nil:
			e.log.WithError(err).WithField("path", decision.Path).Warn(
				"Download failed. Will retry.")
		}
	}
	return nil
}

// download downloads a single log. The log is marked as in flight for the
// duration of the download so that the upload loop skips it.
func (e *Engine) download(entry fc.LogEntry, path string) error {
	e.inFlight.Start(path)
	defer e.inFlight.Finish()

	ctx, cancel := context.WithCancel(e.signal.Context())
	defer cancel()

	logger := e.log.WithFields(logrus.Fields{
		"path": path,
		"size": humanize.Bytes(entry.SizeBytes),
	})
	logger.Info("Downloading log")

	start := e.clock.Now()
	progress, err := e.flightController.DownloadLogFile(ctx, entry, path)
	if err != nil {
		metrics.Downloads.WithLabelValues(metrics.Failure).Inc()
		return errors.WithContext(err, "start download")
	}

	lastStep := -1
	for {
		var p fc.Progress
		var ok bool
		select {
		case <-e.signal.Done():
		case p, ok = <-progress:
		}

		if e.signal.Stopped() {
			metrics.Downloads.WithLabelValues(metrics.Cancelled).Inc()
			logger.Info("Download cancelled. Exiting.")
			return errors.ErrTransferCancelled
		}

		if !ok {
			metrics.Downloads.WithLabelValues(metrics.Failure).Inc()
			return errors.TransferFailure{Path: path, Result: "progress stream closed"}
		}

		rate := transferRate(p.Fraction, entry.SizeBytes, e.clock.Now().Sub(start))
		metrics.DownloadRate.Set(rate)

		percent := int(p.Fraction * 100)
		progressLogger := logger.WithFields(logrus.Fields{
			"progress": percent,
			"kbps":     int(rate),
		})
		if step := percent / 10; step > lastStep {
			lastStep = step
			progressLogger.Info("Downloading")
		} else {
			progressLogger.Debug("Downloading")
		}

		if !p.Result.Terminal() {
			continue
		}

		if p.Result != fc.ResultSuccess {
			metrics.Downloads.WithLabelValues(metrics.Failure).Inc()
			return errors.TransferFailure{Path: path, Result: p.Result.String()}
		}

		metrics.Downloads.WithLabelValues(metrics.Success).Inc()
		metrics.DownloadedBytes.Add(float64(entry.SizeBytes))
		logger.Info("Download complete")
		return nil
	}
}

// transferRate estimates the download rate in kilobits per second.
func transferRate(fraction float32, size uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	kilobits := float64(fraction) * float64(size) * 8 / 1000
	return kilobits / elapsed.Seconds()
}
