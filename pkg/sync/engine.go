package sync

import (
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/sidkik/logloader/pkg/archive"
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
	"github.com/sidkik/logloader/pkg/metrics"
	"github.com/sidkik/logloader/pkg/shutdown"
)

// Ledger records the logs that have been delivered to the archive.
type Ledger interface {
	Has(path string) bool
	Record(path string) error
}

// Config contains the settings and collaborators of an Engine.
type Config struct {
	// LogsDirectory is where downloaded logs are stored.
	LogsDirectory string

	// UploadEnabled controls whether the upload loop runs.
	UploadEnabled bool

	FlightController fc.Client
	Archive          archive.Client
	Ledger           Ledger
	Signal           *shutdown.Signal

	// Optional. Default to the OS filesystem, the real clock, and the
	// standard logger.
	Fs    afero.Fs
	Clock clockwork.Clock
	Log   *logrus.Logger
}

// Engine runs the download and upload loops.
type Engine struct {
	logsDir       string
	uploadEnabled bool

	flightController fc.Client
	archive          archive.Client
	ledger           Ledger

	// State shared between the loops.
	inFlight *InFlight
	signal   *shutdown.Signal

	fs    afero.Fs
	clock clockwork.Clock
	log   *logrus.Logger
}

// New creates an Engine. The engine doesn't start syncing until Run is
// called.
func New(cfg Config) *Engine {
	e := &Engine{
		logsDir:          cfg.LogsDirectory,
		uploadEnabled:    cfg.UploadEnabled,
		flightController: cfg.FlightController,
		archive:          cfg.Archive,
		ledger:           cfg.Ledger,
		inFlight:         NewInFlight(),
		signal:           cfg.Signal,
		fs:               cfg.Fs,
		clock:            cfg.Clock,
		log:              cfg.Log,
	}

	if e.signal == nil {
		e.signal = shutdown.NewSignal()
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.clock == nil {
		e.clock = clockwork.NewRealClock()
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	return e
}

// Run runs the download and upload loops until Stop is called. It only
// returns once both loops have exited.
func (e *Engine) Run() error {
	var loops errgroup.Group
	loops.Go(func() error {
		e.runDownloads()
		e.log.Debug("Download loop exited")
		return nil
	})
	loops.Go(func() error {
		e.runUploads()
		e.log.Debug("Upload loop exited")
		return nil
	})
	return loops.Wait()
}

// Stop requests that both loops exit. It doesn't wait for them to do so.
func (e *Engine) Stop() {
	e.signal.Stop()
}

func (e *Engine) isArmed() bool {
	armed := e.flightController.IsArmed()
	metrics.SetArmed(armed)
	return armed
}
