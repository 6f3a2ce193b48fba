package ledger

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/logloader/pkg/config"
)

const ledgerPath = "/var/logloader/uploaded_logs.txt"

func setup(t *testing.T, contents *string) *bytes.Buffer {
	fs = afero.NewMemMapFs()
	if contents != nil {
		require.NoError(t, afero.WriteFile(fs, ledgerPath, []byte(*contents), 0644))
	}

	parseConfig = func(string) (config.Config, error) {
		cfg := config.Default()
		cfg.LogsDirectory = "/var/logloader/logs"
		cfg.UploadedLogsFile = ledgerPath
		return cfg, nil
	}

	var out bytes.Buffer
	stdout = &out
	return &out
}

func TestPrintLedger(t *testing.T) {
	contents := "/var/logloader/logs/2024-05-28T10:00:00Z.ulg\n" +
		"/var/logloader/logs/2024-05-29T10:00:00Z.ulg\n"
	out := setup(t, &contents)

	assert.NoError(t, printLedger(config.DefaultConfigPath))
	assert.Equal(t, contents, out.String())
}

func TestPrintLedgerEmpty(t *testing.T) {
	out := setup(t, nil)

	assert.NoError(t, printLedger(config.DefaultConfigPath))
	assert.Equal(t, "No logs have been uploaded.\n", out.String())
}
