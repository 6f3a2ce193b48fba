// Package flightcontroller talks to the flight controller through
// mavsdk_server's gRPC API.
//
// mavsdk_server only starts serving once it has discovered an autopilot on
// its MAVLink connection, so a successful dial means the vehicle is
// connected.
package flightcontroller

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/sidkik/logloader/pkg/errors"
	"github.com/sidkik/logloader/pkg/proto/logfiles"
	"github.com/sidkik/logloader/pkg/proto/telemetry"
)

// How long to wait before resubscribing to the armed state after the
// subscription fails.
const resubscribeInterval = 1 * time.Second

type client struct {
	conn      *grpc.ClientConn
	logFiles  logfiles.LogFilesServiceClient
	telemetry telemetry.TelemetryServiceClient

	armedLock sync.Mutex
	armed     bool

	stopWatching context.CancelFunc
}

// Connect dials mavsdk_server at `address`. If the server isn't reachable
// within `timeout`, it returns a ConnectionFailure.
func Connect(ctx context.Context, address string, timeout time.Duration,
	opts ...grpc.DialOption) (Client, error) {

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts = append([]grpc.DialOption{grpc.WithInsecure(), grpc.WithBlock()}, opts...)
	conn, err := grpc.DialContext(dialCtx, address, opts...)
	if err != nil {
		return nil, errors.ConnectionFailure{Address: address, Cause: err}
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	c := &client{
		conn:         conn,
		logFiles:     logfiles.NewLogFilesServiceClient(conn),
		telemetry:    telemetry.NewTelemetryServiceClient(conn),
		stopWatching: stopWatching,
	}
	go c.watchArmed(watchCtx)
	return c, nil
}

func (c *client) ListLogEntries(ctx context.Context) ([]LogEntry, error) {
	resp, err := c.logFiles.GetEntries(ctx, &logfiles.GetEntriesRequest{})
	if err != nil {
		return nil, errors.WithContext(err, "get entries")
	}

	result := resp.GetLogFilesResult()
	if code := Result(result.GetResult()); code != ResultSuccess {
		return nil, errors.Errorf("get entries: %s %s", code, result.GetResultStr())
	}

	var entries []LogEntry
	for _, entry := range resp.GetEntries() {
		entries = append(entries, LogEntry{
			ID:        entry.GetId(),
			Date:      entry.GetDate(),
			SizeBytes: entry.GetSizeBytes(),
		})
	}
	return entries, nil
}

func (c *client) DownloadLogFile(ctx context.Context, entry LogEntry, path string) (
	<-chan Progress, error) {

	// The stream is cancelled once the terminal event is delivered so that
	// its resources are released.
	ctx, cancel := context.WithCancel(ctx)

	stream, err := c.logFiles.SubscribeDownloadLogFile(ctx, &logfiles.SubscribeDownloadLogFileRequest{
		Entry: &logfiles.Entry{
			Id:        entry.ID,
			Date:      entry.Date,
			SizeBytes: entry.SizeBytes,
		},
		Path: path,
	})
	if err != nil {
		cancel()
		return nil, errors.WithContext(err, "start stream")
	}

	progress := make(chan Progress)
	go func() {
		defer cancel()
		defer close(progress)
		for {
			event := Progress{Result: ResultUnknown}
			resp, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				// The stream ended without a terminal result, so report the
				// download as failed.
				log.WithError(err).WithField("path", path).Debug(
					"Download stream ended unexpectedly")
			} else {
				event.Result = Result(resp.GetLogFilesResult().GetResult())
				event.Fraction = resp.GetProgress().GetProgress()
			}

			select {
			case progress <- event:
			case <-ctx.Done():
				return
			}

			if event.Result.Terminal() {
				return
			}
		}
	}()
	return progress, nil
}

func (c *client) IsArmed() bool {
	c.armedLock.Lock()
	defer c.armedLock.Unlock()
	return c.armed
}

func (c *client) Close() error {
	c.stopWatching()
	return c.conn.Close()
}

// watchArmed keeps the cached armed state up to date until `ctx` is
// cancelled. If the subscription fails, the last known state is kept.
func (c *client) watchArmed(ctx context.Context) {
	for {
		err := c.subscribeArmed(ctx)
		if ctx.Err() != nil {
			return
		}
		log.WithError(err).Warn("Armed state subscription ended. Resubscribing.")

		select {
		case <-ctx.Done():
			return
		case <-time.After(resubscribeInterval):
		}
	}
}

func (c *client) subscribeArmed(ctx context.Context) error {
	stream, err := c.telemetry.SubscribeArmed(ctx, &telemetry.SubscribeArmedRequest{})
	if err != nil {
		return errors.WithContext(err, "start stream")
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			return errors.WithContext(err, "receive")
		}

		armed := resp.GetIsArmed()
		c.armedLock.Lock()
		changed := c.armed != armed
		c.armed = armed
		c.armedLock.Unlock()

		if changed {
			log.WithField("armed", armed).Info("Vehicle armed state changed")
		}
	}
}
