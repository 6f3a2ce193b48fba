package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/logloader/pkg/errors"
)

// fs is the filesystem config files are read from. The tests replace it with
// afero.NewMemMapFs().
var fs = afero.NewOsFs()

// parseConfigErrTemplate is shown when the config file isn't valid YAML or
// doesn't match Config. The yaml library loses the location of the error, so
// the parser's message is passed on as is.
const parseConfigErrTemplate = "Configuration file could not be parsed. " +
	"Please review %q.\n" +
	"Common pitfalls include:\n" +
	" - Writing connectTimeout as a bare number. It must be a duration " +
	"such as \"10s\" or \"1m30s\".\n" +
	" - Quoting publicLogs or uploadEnabled. They only accept true or false.\n" +
	" - Misspelling a field. The known fields are version, endpoint, " +
	"connectTimeout, logsDirectory, server, email, publicLogs, uploadEnabled, " +
	"uploadedLogsFile and metricsAddress.\n\n" +
	"For reference, here is the error from the parser:\n" +
	"%s"

type incompatibleVersionError struct {
	path, exp, actual string
}

func (err incompatibleVersionError) Error() string {
	return err.FriendlyMessage()
}

func (err incompatibleVersionError) FriendlyMessage() string {
	return fmt.Sprintf("The configuration file %q is incompatible "+
		"with this version of logloader.\n"+
		"Expected version %q, but got %q.", err.path, err.exp, err.actual)
}

// parseConfig reads the config at `path` on top of the defaults. A missing
// file isn't an error and yields Default().
func parseConfig(path string) (Config, error) {
	configBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("Config file doesn't exist. Using defaults")
			return Default(), nil
		}
		return Config{}, errors.WithContext(err, "read file")
	}

	config := Default()
	if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return Config{}, errors.NewFriendlyError(parseConfigErrTemplate, path, err)
	}

	if config.Version != SupportedConfigVersion {
		return Config{}, incompatibleVersionError{path, SupportedConfigVersion, config.Version}
	}

	// Unmarshal strictly only after the version check so that an old config
	// reports the version mismatch rather than its unknown fields.
	err = yaml.UnmarshalStrict(configBytes, &config, yaml.DisallowUnknownFields)
	if err != nil {
		return Config{}, errors.NewFriendlyError(parseConfigErrTemplate, path, err)
	}
	return config, nil
}
