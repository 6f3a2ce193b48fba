package flightcontroller

//go:generate mockery -name Client

import (
	"context"
	"fmt"

	"github.com/sidkik/logloader/pkg/proto/logfiles"
)

// LogEntry describes a log file that's stored on the flight controller.
type LogEntry struct {
	ID uint32

	// Date is the UTC creation time of the log in the fixed-width
	// `2006-01-02T15:04:05Z` format, so comparing dates as strings is
	// equivalent to comparing them chronologically.
	Date string

	SizeBytes uint64
}

// Result is the outcome reported by the flight controller for a log files
// request.
type Result int32

const (
	ResultUnknown         = Result(logfiles.LogFilesResult_RESULT_UNKNOWN)
	ResultSuccess         = Result(logfiles.LogFilesResult_RESULT_SUCCESS)
	ResultNext            = Result(logfiles.LogFilesResult_RESULT_NEXT)
	ResultNoLogfiles      = Result(logfiles.LogFilesResult_RESULT_NO_LOGFILES)
	ResultTimeout         = Result(logfiles.LogFilesResult_RESULT_TIMEOUT)
	ResultInvalidArgument = Result(logfiles.LogFilesResult_RESULT_INVALID_ARGUMENT)
	ResultFileOpenFailed  = Result(logfiles.LogFilesResult_RESULT_FILE_OPEN_FAILED)
	ResultNoSystem        = Result(logfiles.LogFilesResult_RESULT_NO_SYSTEM)
)

var resultNames = map[Result]string{
	ResultUnknown:         "unknown",
	ResultSuccess:         "success",
	ResultNext:            "next",
	ResultNoLogfiles:      "no logfiles",
	ResultTimeout:         "timeout",
	ResultInvalidArgument: "invalid argument",
	ResultFileOpenFailed:  "file open failed",
	ResultNoSystem:        "no system",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", int32(r))
}

// Terminal returns whether no more progress events follow a progress event
// with this result.
func (r Result) Terminal() bool {
	return r != ResultNext
}

// Progress is a single event in a log download. Every event but the last has
// Result ResultNext.
type Progress struct {
	Result Result

	// Fraction is the share of the log that has been downloaded, between 0
	// and 1.
	Fraction float32
}

// Client is the interface for interacting with the flight controller.
type Client interface {
	// ListLogEntries returns the logs stored on the flight controller.
	ListLogEntries(ctx context.Context) ([]LogEntry, error)

	// DownloadLogFile starts downloading `entry` to `path`. Progress events
	// are sent on the returned channel, which is closed after the terminal
	// event. Cancelling `ctx` abandons the download and closes the channel.
	DownloadLogFile(ctx context.Context, entry LogEntry, path string) (<-chan Progress, error)

	// IsArmed returns the most recently reported armed state of the vehicle.
	IsArmed() bool

	Close() error
}
