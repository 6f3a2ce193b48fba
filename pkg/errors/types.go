package errors

import (
	"fmt"
)

var (
	// ErrTransferCancelled is returned when a download is abandoned because
	// the process is shutting down.
	ErrTransferCancelled = New("download cancelled by shutdown")

	// ErrVehicleArmed is returned when a batch of transfers is abandoned
	// because the vehicle armed between two transfers.
	ErrVehicleArmed = New("vehicle armed")
)

// MissingFieldError represents a missing required field.
type MissingFieldError struct {
	Field string
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", err.Field)
}

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// ConnectionFailure represents a flight controller that couldn't be reached
// within the connection timeout.
type ConnectionFailure struct {
	Address string
	Cause   error
}

func (err ConnectionFailure) Error() string {
	return fmt.Sprintf("connect to %s: %s", err.Address, err.Cause)
}

func (err ConnectionFailure) Unwrap() error {
	return err.Cause
}

// TransferFailure is returned when the flight controller reports a terminal
// result other than success for a log download.
type TransferFailure struct {
	Path   string
	Result string
}

func (err TransferFailure) Error() string {
	return fmt.Sprintf("download of %s failed: %s", err.Path, err.Result)
}

// UploadFailure is returned when the archive responds to an upload with
// anything other than a redirect to the uploaded log.
type UploadFailure struct {
	Path       string
	StatusCode int
}

func (err UploadFailure) Error() string {
	return fmt.Sprintf("upload of %s failed with status %d", err.Path, err.StatusCode)
}
