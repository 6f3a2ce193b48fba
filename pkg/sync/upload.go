package sync

import (
	"context"
	"time"

	"github.com/sidkik/logloader/pkg/errors"
	"github.com/sidkik/logloader/pkg/metrics"
)

const (
	// uploadStartupDelay gives the download loop time to mark an incomplete
	// log from a previous run as in flight before the first upload pass.
	uploadStartupDelay = 5 * time.Second

	uploadInterval   = 1 * time.Second
	reachableTimeout = 30 * time.Second

	// uploadTimeout bounds a single upload, including the transfer of the
	// log body.
	uploadTimeout = 10 * time.Minute
)

func (e *Engine) runUploads() {
	if !e.uploadEnabled {
		e.log.Info("Uploads are disabled")
		return
	}

	if !e.signal.Sleep(e.clock, uploadStartupDelay) {
		return
	}

	for !e.signal.Stopped() {
		if e.isArmed() {
			e.signal.Sleep(e.clock, armedPollInterval)
			continue
		}

		if err := e.uploadLogs(); err != nil {
			e.log.WithError(err).Warn("Failed to upload logs")
		}
		e.signal.Sleep(e.clock, uploadInterval)
	}
}

// uploadLogs attempts to upload every local log that hasn't been delivered.
// Logs that fail to upload are retried on the next pass.
func (e *Engine) uploadLogs() error {
	toUpload, err := e.logsToUpload()
	if err != nil {
		return errors.WithContext(err, "get logs to upload")
	}

	for _, path := range toUpload {
		if e.isArmed() || e.signal.Stopped() {
			return nil
		}

		if err := e.reachable(); err != nil {
			e.log.WithError(err).Warn("Archive is unreachable. Will retry.")
			continue
		}

		url, err := e.upload(path)
		if err != nil {
			metrics.Uploads.WithLabelValues(metrics.Failure).Inc()
			e.log.WithError(err).WithField("path", path).Warn("Failed to upload log. Will retry.")
			continue
		}

		metrics.Uploads.WithLabelValues(metrics.Success).Inc()
		e.log.WithField("url", url).Info("Upload succeeded")

		if err := e.ledger.Record(path); err != nil {
			e.log.WithError(err).WithField("path", path).Error(
				"Failed to record upload. The log may be uploaded again.")
		}
	}
	return nil
}

// logsToUpload returns the local logs that haven't been delivered and aren't
// being downloaded.
func (e *Engine) logsToUpload() (paths []string, err error) {
	local, err := SnapshotLocal(e.fs, e.logsDir)
	if err != nil {
		return nil, err
	}

	for _, artifact := range local.Logs() {
		if e.ledger.Has(artifact.Path) || !e.inFlight.IsDeliverable(artifact.Path) {
			continue
		}
		paths = append(paths, artifact.Path)
	}
	return paths, nil
}

func (e *Engine) reachable() error {
	ctx, cancel := context.WithTimeout(e.signal.Context(), reachableTimeout)
	defer cancel()
	return e.archive.Reachable(ctx)
}

func (e *Engine) upload(path string) (string, error) {
	ctx, cancel := context.WithTimeout(e.signal.Context(), uploadTimeout)
	defer cancel()
	return e.archive.Upload(ctx, path)
}
