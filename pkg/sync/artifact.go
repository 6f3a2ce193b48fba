package sync

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"

	"github.com/sidkik/logloader/pkg/errors"
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
)

// LogExtension is the extension of downloaded logs.
const LogExtension = ".ulg"

// logNamePattern matches the names of downloaded logs, and captures their
// creation time.
var logNamePattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z)\.ulg$`)

// ArtifactPath returns the local path that `entry` is downloaded to.
func ArtifactPath(dir string, entry fc.LogEntry) string {
	return filepath.Join(dir, entry.Date+LogExtension)
}

// LocalArtifact is a file in the logs directory.
type LocalArtifact struct {
	Path string
	Size int64
}

// timestamp returns the creation time encoded in the artifact's name, if the
// name follows the naming scheme for downloaded logs.
func (a LocalArtifact) timestamp() (string, bool) {
	matches := logNamePattern.FindStringSubmatch(filepath.Base(a.Path))
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// LocalSnapshot is a collection of the files in the logs directory, keyed by
// path.
type LocalSnapshot map[string]LocalArtifact

// SnapshotLocal returns the regular files directly within `dir`.
func SnapshotLocal(fs afero.Fs, dir string) (LocalSnapshot, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound{Path: dir}
		}
		return nil, errors.WithContext(err, "read dir")
	}

	snapshot := LocalSnapshot{}
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}

		path := filepath.Join(dir, info.Name())
		snapshot[path] = LocalArtifact{Path: path, Size: info.Size()}
	}
	return snapshot, nil
}

// Latest returns the most recent creation time of the downloaded logs. It
// returns false if no logs have been downloaded.
func (local LocalSnapshot) Latest() (latest string, ok bool) {
	for _, artifact := range local {
		ts, isLog := artifact.timestamp()
		if isLog && ts > latest {
			latest = ts
			ok = true
		}
	}
	return latest, ok
}

// Logs returns the downloaded logs sorted by path. Files that don't follow
// the log naming scheme, such as editor swap files, are ignored.
func (local LocalSnapshot) Logs() []LocalArtifact {
	var logs []LocalArtifact
	for _, artifact := range local {
		if _, isLog := artifact.timestamp(); isLog {
			logs = append(logs, artifact)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Path < logs[j].Path
	})
	return logs
}
