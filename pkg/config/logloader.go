package config

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/sidkik/logloader/pkg/errors"
)

const (
	// DefaultConfigPath is the default path to the logloader config.
	DefaultConfigPath = "~/.logloader.yaml"

	// InitialConfigVersion is the first version of the logloader config.
	// Config files that do not specify a version default to this version.
	InitialConfigVersion = "v1alpha1"

	// SupportedConfigVersion is the config version supported by this
	// binary.
	SupportedConfigVersion = "v1alpha1"
)

// Config contains the settings of the sync engine and its collaborators.
type Config struct {
	Version string `json:"version,omitempty"`

	// Endpoint is the gRPC address of the mavsdk_server connected to the
	// flight controller.
	Endpoint string `json:"endpoint"`

	// ConnectTimeout bounds each connection attempt to Endpoint. It's a Go
	// duration string, such as "10s".
	ConnectTimeout string `json:"connectTimeout"`

	LogsDirectory string `json:"logsDirectory"`

	// Server is the host of the log archive.
	Server     string `json:"server"`
	Email      string `json:"email"`
	PublicLogs bool   `json:"publicLogs"`

	UploadEnabled    bool   `json:"uploadEnabled"`
	UploadedLogsFile string `json:"uploadedLogsFile"`

	// MetricsAddress is the address of the Prometheus endpoint. Metrics
	// aren't served if it's empty.
	MetricsAddress string `json:"metricsAddress,omitempty"`
}

// Default returns the config used when no config file exists.
func Default() Config {
	return Config{
		Version:          InitialConfigVersion,
		Endpoint:         "localhost:50051",
		ConnectTimeout:   "10s",
		LogsDirectory:    "~/logloader/logs",
		Server:           "logs.px4.io",
		UploadEnabled:    true,
		UploadedLogsFile: "~/logloader/uploaded_logs.txt",
	}
}

// homedirExpand is overridden in the tests.
var homedirExpand = homedir.Expand

// Parse parses the config at `path`. Fields missing from the file keep their
// default values, and a missing file results in the default config.
func Parse(path string) (Config, error) {
	path, err := homedirExpand(path)
	if err != nil {
		return Config{}, errors.WithContext(err, "expand config path")
	}

	config, err := parseConfig(path)
	if err != nil {
		return Config{}, errors.WithContext(err, "parse")
	}
	return config, nil
}

// Resolve expands the paths in the config and checks that the required
// fields are set. It should be called after any command line overrides have
// been applied.
func (c Config) Resolve() (Config, error) {
	var err error
	for _, field := range []*string{&c.LogsDirectory, &c.UploadedLogsFile} {
		*field, err = homedirExpand(*field)
		if err != nil {
			return Config{}, errors.WithContext(err, "expand path")
		}
	}

	required := []struct {
		name, value string
	}{
		{"endpoint", c.Endpoint},
		{"logsDirectory", c.LogsDirectory},
		{"uploadedLogsFile", c.UploadedLogsFile},
	}
	if c.UploadEnabled {
		required = append(required, struct{ name, value string }{"server", c.Server})
	}
	for _, field := range required {
		if field.value == "" {
			return Config{}, errors.MissingFieldError{Field: field.name}
		}
	}

	if _, err := c.GetConnectTimeout(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// GetConnectTimeout returns the parsed ConnectTimeout.
func (c Config) GetConnectTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.ConnectTimeout)
	if err != nil {
		return 0, errors.NewFriendlyError(
			"The connectTimeout %q is not a valid duration.\n"+
				"Durations are written like \"10s\" or \"1m30s\".", c.ConnectTimeout)
	}
	if timeout <= 0 {
		return 0, errors.NewFriendlyError(
			"The connectTimeout must be positive, but got %q.", c.ConnectTimeout)
	}
	return timeout, nil
}
