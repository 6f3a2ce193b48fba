// Package ledger records the logs that have been delivered to the archive.
//
// The ledger file has one delivered path per line and is only ever appended
// to. It's read once when the ledger is opened; membership queries are then
// answered from memory.
package ledger

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/sidkik/logloader/pkg/errors"
)

// Ledger is the append-only record of delivered logs. It's safe for
// concurrent use.
type Ledger struct {
	fs   afero.Fs
	path string

	lock      sync.RWMutex
	delivered map[string]struct{}
	order     []string
}

// Open reads the ledger at `path`. A missing file is treated as an empty
// ledger; it's created on the first Record.
func Open(fs afero.Fs, path string) (*Ledger, error) {
	l := &Ledger{
		fs:        fs,
		path:      path,
		delivered: map[string]struct{}{},
	}

	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, errors.WithContext(err, "open")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l.add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithContext(err, "read")
	}
	return l, nil
}

// Has returns whether `path` has been recorded as delivered.
func (l *Ledger) Has(path string) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()

	_, ok := l.delivered[path]
	return ok
}

// Record durably appends `path` to the ledger. If the write fails, the path
// isn't marked as delivered so that it's reconsidered later.
func (l *Ledger) Record(path string) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.delivered[path]; ok {
		return nil
	}

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithContext(err, "open")
	}

	if _, err := f.WriteString(path + "\n"); err != nil {
		f.Close()
		return errors.WithContext(err, "write")
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return errors.WithContext(err, "sync")
	}

	if err := f.Close(); err != nil {
		return errors.WithContext(err, "close")
	}

	l.add(path)
	return nil
}

// Paths returns the recorded paths in the order they were delivered.
func (l *Ledger) Paths() []string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	paths := make([]string, len(l.order))
	copy(paths, l.order)
	return paths
}

func (l *Ledger) add(path string) {
	if _, ok := l.delivered[path]; ok {
		return
	}
	l.delivered[path] = struct{}{}
	l.order = append(l.order, path)
}
