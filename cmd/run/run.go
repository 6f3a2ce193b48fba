package run

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sidkik/logloader/cmd/util"
	"github.com/sidkik/logloader/pkg/archive"
	"github.com/sidkik/logloader/pkg/config"
	"github.com/sidkik/logloader/pkg/errors"
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
	"github.com/sidkik/logloader/pkg/ledger"
	"github.com/sidkik/logloader/pkg/metrics"
	"github.com/sidkik/logloader/pkg/shutdown"
	logSync "github.com/sidkik/logloader/pkg/sync"
)

const connectRetryInterval = 1 * time.Second

// Mocked for unit testing.
var (
	fs          = afero.NewOsFs()
	connect     = fc.Connect
	parseConfig = config.Parse
)

// New creates a new `run` command.
func New() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mirror logs from the flight controller and upload them",
		Long: "Download new logs from the flight controller into the logs\n" +
			"directory, and upload them to the log archive. Transfers are\n" +
			"suspended while the vehicle is armed.",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				util.HandleFatalError(err)
			}

			if err := run(cfg); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath,
		"Path to the logloader config.")
	cmd.Flags().String("endpoint", "",
		"Address of the mavsdk_server gRPC API.")
	cmd.Flags().String("connect-timeout", "",
		"How long to wait for the flight controller on each connection attempt.")
	cmd.Flags().String("logs-dir", "",
		"Directory that downloaded logs are stored in.")
	cmd.Flags().String("server", "",
		"Host of the log archive.")
	cmd.Flags().String("email", "",
		"Email that uploads are associated with.")
	cmd.Flags().Bool("public", false,
		"List uploaded logs publicly.")
	cmd.Flags().Bool("no-upload", false, "Only download logs.")
	cmd.Flags().String("uploaded-logs-file", "",
		"File that records the logs that have been uploaded.")
	cmd.Flags().String("metrics-address", "",
		"Address to serve Prometheus metrics on.")
	return cmd
}

// loadConfig parses the config file and applies the flags that were set
// explicitly.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	cfg, err := parseConfig(path)
	if err != nil {
		return config.Config{}, errors.WithContext(err, "parse config")
	}

	flags := cmd.Flags()
	stringOverrides := map[string]*string{
		"endpoint":           &cfg.Endpoint,
		"connect-timeout":    &cfg.ConnectTimeout,
		"logs-dir":           &cfg.LogsDirectory,
		"server":             &cfg.Server,
		"email":              &cfg.Email,
		"uploaded-logs-file": &cfg.UploadedLogsFile,
		"metrics-address":    &cfg.MetricsAddress,
	}
	for name, field := range stringOverrides {
		if flags.Changed(name) {
			value, err := flags.GetString(name)
			if err != nil {
				return config.Config{}, errors.WithContext(err, "read flag")
			}
			*field = value
		}
	}
	if flags.Changed("public") {
		if cfg.PublicLogs, err = flags.GetBool("public"); err != nil {
			return config.Config{}, errors.WithContext(err, "read flag")
		}
	}
	noUpload, err := flags.GetBool("no-upload")
	if err != nil {
		return config.Config{}, errors.WithContext(err, "read flag")
	}
	if noUpload {
		cfg.UploadEnabled = false
	}
	return cfg.Resolve()
}

func run(cfg config.Config) error {
	exitSignal := shutdown.NewSignal()
	go func() {
		defer util.HandlePanic()
		stopOnInterrupt(exitSignal)
	}()

	if err := fs.MkdirAll(cfg.LogsDirectory, 0755); err != nil {
		return errors.WithContext(err, "create logs directory")
	}

	timeout, err := cfg.GetConnectTimeout()
	if err != nil {
		return err
	}

	flightController, ok := connectWithRetry(exitSignal, clockwork.NewRealClock(),
		cfg.Endpoint, timeout)
	if !ok {
		return nil
	}
	defer flightController.Close()

	delivered, err := ledger.Open(fs, cfg.UploadedLogsFile)
	if err != nil {
		return errors.WithContext(err, "open uploaded logs file")
	}

	if cfg.MetricsAddress != "" {
		go func() {
			defer util.HandlePanic()
			log.WithField("address", cfg.MetricsAddress).Info("Serving metrics")
			if err := metrics.Serve(cfg.MetricsAddress); err != nil {
				log.WithError(err).Error("Metrics server exited")
			}
		}()
	}

	logger := log.StandardLogger()
	engine := logSync.New(logSync.Config{
		LogsDirectory:    cfg.LogsDirectory,
		UploadEnabled:    cfg.UploadEnabled,
		FlightController: flightController,
		Archive: archive.New(fs, archive.Settings{
			Server: cfg.Server,
			Email:  cfg.Email,
			Public: cfg.PublicLogs,
			Log:    logger,
		}),
		Ledger: delivered,
		Signal: exitSignal,
		Fs:     fs,
		Log:    logger,
	})
	if err := engine.Run(); err != nil {
		return errors.WithContext(err, "sync")
	}
	log.Info("Exiting")
	return nil
}

// connectWithRetry connects to the flight controller, retrying until it
// succeeds or the signal is stopped. It returns false if it gave up because
// of the signal.
func connectWithRetry(exitSignal *shutdown.Signal, clock clockwork.Clock,
	address string, timeout time.Duration) (fc.Client, bool) {
	for {
		log.WithField("address", address).Info("Connecting to flight controller")
		client, err := connect(exitSignal.Context(), address, timeout)
		if err == nil {
			log.Info("Connected to flight controller")
			return client, true
		}

		log.WithError(err).Warn("Failed to connect to flight controller. Will retry.")
		if !exitSignal.Sleep(clock, connectRetryInterval) {
			return nil, false
		}
	}
}

func stopOnInterrupt(exitSignal *shutdown.Signal) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		log.WithField("signal", sig).Info("Shutting down")
		exitSignal.Stop()
	case <-exitSignal.Done():
	}
}
