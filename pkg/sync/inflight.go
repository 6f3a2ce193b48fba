package sync

import (
	goSync "sync"
)

// InFlight tracks the log that's currently, or was most recently, being
// downloaded. The upload loop consults it so that it never uploads a log
// that's only partially written.
type InFlight struct {
	lock     goSync.Mutex
	path     string
	complete bool
}

// NewInFlight returns an InFlight with no download in progress.
func NewInFlight() *InFlight {
	return &InFlight{complete: true}
}

// Start marks `path` as being downloaded.
func (f *InFlight) Start(path string) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.path = path
	f.complete = false
}

// Finish marks the current download as terminated. It's called regardless
// of whether the download succeeded.
func (f *InFlight) Finish() {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.complete = true
}

// IsDeliverable returns false if `path` is currently being downloaded.
func (f *InFlight) IsDeliverable(path string) bool {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.path == path {
		return f.complete
	}
	return true
}
