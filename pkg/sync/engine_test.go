package sync

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	archiveMocks "github.com/sidkik/logloader/pkg/archive/mocks"
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
	fcMocks "github.com/sidkik/logloader/pkg/flightcontroller/mocks"
	"github.com/sidkik/logloader/pkg/ledger"
	"github.com/sidkik/logloader/pkg/shutdown"
)

const ledgerPath = "/var/lib/logloader/uploaded_logs.txt"

type testEngine struct {
	*Engine
	fcClient      *fcMocks.Client
	archiveClient *archiveMocks.Client
	delivered     *ledger.Ledger
	fakeClock     clockwork.FakeClock
	hook          *logrusTest.Hook
}

func newTestEngine(t *testing.T) testEngine {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(logsDir, 0755))

	delivered, err := ledger.Open(fs, ledgerPath)
	require.NoError(t, err)

	logger, hook := logrusTest.NewNullLogger()
	te := testEngine{
		fcClient:      &fcMocks.Client{},
		archiveClient: &archiveMocks.Client{},
		delivered:     delivered,
		fakeClock:     clockwork.NewFakeClock(),
		hook:          hook,
	}
	te.Engine = New(Config{
		LogsDirectory:    logsDir,
		UploadEnabled:    true,
		FlightController: te.fcClient,
		Archive:          te.archiveClient,
		Ledger:           delivered,
		Signal:           shutdown.NewSignal(),
		Fs:               fs,
		Clock:            te.fakeClock,
		Log:              logger,
	})
	return te
}

func (te testEngine) writeLog(t *testing.T, entry fc.LogEntry, size int) string {
	path := ArtifactPath(logsDir, entry)
	require.NoError(t, afero.WriteFile(te.fs, path, make([]byte, size), 0644))
	return path
}

// runAsync runs `fn` in a goroutine, and returns a channel that's closed
// when it returns.
func runAsync(fn func()) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}

func assertReturnsPromptly(t *testing.T, done chan struct{}) {
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Loop didn't exit after Stop")
	}
}

func TestEngineRunJoinsBothLoops(t *testing.T) {
	te := newTestEngine(t)
	te.fcClient.On("IsArmed").Return(false)
	te.fcClient.On("ListLogEntries", mock.Anything).Return([]fc.LogEntry{}, nil)

	done := runAsync(func() {
		assert.NoError(t, te.Run())
	})

	// The download loop is waiting for the next poll, and the upload loop is
	// in its startup delay.
	te.fakeClock.BlockUntil(2)
	te.Stop()
	assertReturnsPromptly(t, done)
}

func TestDownloadLoopShutdownLatency(t *testing.T) {
	te := newTestEngine(t)
	te.fcClient.On("IsArmed").Return(false)
	te.fcClient.On("ListLogEntries", mock.Anything).Return([]fc.LogEntry{}, nil)

	done := runAsync(te.runDownloads)
	te.fakeClock.BlockUntil(1)
	te.Stop()
	assertReturnsPromptly(t, done)
	te.fcClient.AssertNumberOfCalls(t, "ListLogEntries", 1)
}

func TestDownloadLoopArmedGating(t *testing.T) {
	te := newTestEngine(t)

	var armed int32 = 1
	te.fcClient.On("IsArmed").Return(func() bool {
		return atomic.LoadInt32(&armed) == 1
	})
	te.fcClient.On("ListLogEntries", mock.Anything).Return([]fc.LogEntry{}, nil)

	done := runAsync(te.runDownloads)

	// Polling the armed state.
	te.fakeClock.BlockUntil(1)
	te.fcClient.AssertNotCalled(t, "ListLogEntries", mock.Anything)

	// The disarm is noticed on the next poll, and is followed by the grace
	// period.
	atomic.StoreInt32(&armed, 0)
	te.fakeClock.Advance(armedPollInterval)
	te.fakeClock.BlockUntil(1)
	te.fcClient.AssertNotCalled(t, "ListLogEntries", mock.Anything)

	te.fakeClock.Advance(disarmGracePeriod)
	te.fakeClock.BlockUntil(1)
	te.fcClient.AssertNumberOfCalls(t, "ListLogEntries", 1)

	te.Stop()
	assertReturnsPromptly(t, done)
}

func TestDownloadLoopListFailure(t *testing.T) {
	te := newTestEngine(t)
	te.fcClient.On("IsArmed").Return(false)
	te.fcClient.On("ListLogEntries", mock.Anything).Return(nil, assert.AnError).Once()
	te.fcClient.On("ListLogEntries", mock.Anything).Return([]fc.LogEntry{}, nil)

	done := runAsync(te.runDownloads)

	// The retry happens after the short retry interval rather than the
	// regular poll interval.
	te.fakeClock.BlockUntil(1)
	te.fcClient.AssertNumberOfCalls(t, "ListLogEntries", 1)
	te.fakeClock.Advance(listRetryInterval)
	te.fakeClock.BlockUntil(1)
	te.fcClient.AssertNumberOfCalls(t, "ListLogEntries", 2)

	te.Stop()
	assertReturnsPromptly(t, done)
}

func TestUploadLoopDisabled(t *testing.T) {
	te := newTestEngine(t)
	te.uploadEnabled = false

	assertReturnsPromptly(t, runAsync(te.runUploads))
	te.fcClient.AssertNotCalled(t, "IsArmed")
}

func TestUploadLoopShutdownDuringStartupDelay(t *testing.T) {
	te := newTestEngine(t)

	done := runAsync(te.runUploads)
	te.fakeClock.BlockUntil(1)
	te.Stop()
	assertReturnsPromptly(t, done)
	te.fcClient.AssertNotCalled(t, "IsArmed")
}

func TestUploadLoopArmed(t *testing.T) {
	te := newTestEngine(t)
	te.writeLog(t, t1, 100)
	te.fcClient.On("IsArmed").Return(true)

	done := runAsync(te.runUploads)
	te.fakeClock.BlockUntil(1)
	te.fakeClock.Advance(uploadStartupDelay)

	// Each armed poll waits for the poll interval without scanning.
	te.fakeClock.BlockUntil(1)
	te.fakeClock.Advance(armedPollInterval)
	te.fakeClock.BlockUntil(1)

	te.Stop()
	assertReturnsPromptly(t, done)
	te.archiveClient.AssertNotCalled(t, "Reachable", mock.Anything)
	te.archiveClient.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadLoopUploads(t *testing.T) {
	te := newTestEngine(t)
	path := te.writeLog(t, t1, 100)
	te.fcClient.On("IsArmed").Return(false)
	te.archiveClient.On("Reachable", mock.Anything).Return(nil)
	te.archiveClient.On("Upload", mock.Anything, path).Return("https://review.px4.io/plot_app?log=1", nil)

	done := runAsync(te.runUploads)
	te.fakeClock.BlockUntil(1)
	te.fakeClock.Advance(uploadStartupDelay)

	// Wait for the pause after the first pass.
	te.fakeClock.BlockUntil(1)
	assert.True(t, te.delivered.Has(path))

	// The next pass doesn't upload the log again.
	te.fakeClock.Advance(uploadInterval)
	te.fakeClock.BlockUntil(1)
	te.archiveClient.AssertNumberOfCalls(t, "Upload", 1)

	te.Stop()
	assertReturnsPromptly(t, done)
}

func TestEngineDoesNotUploadLogBeingDownloaded(t *testing.T) {
	te := newTestEngine(t)
	complete := te.writeLog(t, t1, int(t1.SizeBytes))
	downloading := te.writeLog(t, t2, 50)

	te.fcClient.On("IsArmed").Return(false)
	te.fcClient.On("ListLogEntries", mock.Anything).Return([]fc.LogEntry{t1, t2}, nil)

	progress := make(chan fc.Progress)
	downloadStarted := make(chan struct{})
	te.fcClient.On("DownloadLogFile", mock.Anything, t2, downloading).
		Run(func(mock.Arguments) {
			assert.NoError(t, afero.WriteFile(te.fs, downloading, make([]byte, 120), 0644))
			close(downloadStarted)
		}).
		Return((<-chan fc.Progress)(progress), nil).
		Once()

	te.archiveClient.On("Reachable", mock.Anything).Return(nil)
	te.archiveClient.On("Upload", mock.Anything, complete).Return(viewURL, nil).Once()
	te.archiveClient.On("Upload", mock.Anything, downloading).Return(viewURL, nil).Once()

	done := runAsync(func() {
		assert.NoError(t, te.Run())
	})

	// The incomplete log is being redownloaded, and the upload loop is in its
	// startup delay.
	<-downloadStarted
	progress <- fc.Progress{Result: fc.ResultNext, Fraction: 0.5}
	te.fakeClock.BlockUntil(1)
	te.fakeClock.Advance(uploadStartupDelay)

	// The first upload pass delivers the complete log and skips the one that
	// is still downloading.
	te.fakeClock.BlockUntil(1)
	assert.True(t, te.delivered.Has(complete))
	assert.False(t, te.delivered.Has(downloading))
	te.archiveClient.AssertNotCalled(t, "Upload", mock.Anything, downloading)

	// Once the download finishes, the download loop waits for its next poll
	// and the log is delivered on the next upload pass.
	progress <- fc.Progress{Result: fc.ResultSuccess, Fraction: 1}
	te.fakeClock.BlockUntil(2)
	assert.False(t, te.delivered.Has(downloading))

	te.fakeClock.Advance(uploadInterval)
	te.fakeClock.BlockUntil(2)
	assert.True(t, te.delivered.Has(downloading))

	te.Stop()
	assertReturnsPromptly(t, done)
	te.archiveClient.AssertExpectations(t)
	te.fcClient.AssertNumberOfCalls(t, "DownloadLogFile", 1)
}
