package util

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/sidkik/logloader/pkg/errors"
)

// exit is mocked out in the unit tests.
var exit = os.Exit

// HandleFatalError prints the error and exits. Friendly errors are printed
// without their context, and everything else is printed in full.
func HandleFatalError(err error) {
	log.WithError(err).Debug("Fatal error")
	fmt.Fprintln(os.Stderr, errors.GetPrintableMessage(err))
	exit(1)
}

// HandlePanic logs the stack trace of a panic and exits. It should be
// deferred at the top of main, and of every goroutine that isn't joined.
func HandlePanic() {
	if r := recover(); r != nil {
		log.WithField("panic", r).Errorf("Unexpected panic\n%s", debug.Stack())
		fmt.Fprintln(os.Stderr, "logloader crashed. Please report this "+
			"error along with the log above.")
		exit(1)
	}
}
