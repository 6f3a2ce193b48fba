package ledger

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sidkik/logloader/cmd/util"
	"github.com/sidkik/logloader/pkg/config"
	"github.com/sidkik/logloader/pkg/errors"
	"github.com/sidkik/logloader/pkg/ledger"
)

// Mocked for unit testing.
var (
	fs                    = afero.NewOsFs()
	stdout      io.Writer = os.Stdout
	parseConfig           = config.Parse
)

// New creates a new `ledger` command.
func New() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List the logs that have been uploaded to the archive",
		Run: func(_ *cobra.Command, _ []string) {
			if err := printLedger(configPath); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath,
		"Path to the logloader config.")
	return cmd
}

func printLedger(configPath string) error {
	cfg, err := parseConfig(configPath)
	if err != nil {
		return errors.WithContext(err, "parse config")
	}

	cfg, err = cfg.Resolve()
	if err != nil {
		return errors.WithContext(err, "validate config")
	}

	delivered, err := ledger.Open(fs, cfg.UploadedLogsFile)
	if err != nil {
		return errors.WithContext(err, "open uploaded logs file")
	}

	paths := delivered.Paths()
	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No logs have been uploaded.")
		return nil
	}

	for _, path := range paths {
		fmt.Fprintln(stdout, path)
	}
	return nil
}
