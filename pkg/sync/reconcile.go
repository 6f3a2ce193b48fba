package sync

import (
	fc "github.com/sidkik/logloader/pkg/flightcontroller"
)

// Action is what the download loop should do with a remote log.
type Action int

const (
	// UpToDate logs are skipped.
	UpToDate Action = iota

	// Missing logs are downloaded.
	Missing

	// Incomplete logs have a local file that's smaller than the remote log,
	// most likely because a previous download was interrupted. The local
	// file is removed and the log is downloaded again.
	Incomplete
)

func (a Action) String() string {
	switch a {
	case UpToDate:
		return "up-to-date"
	case Missing:
		return "missing"
	case Incomplete:
		return "incomplete"
	}
	return "unknown"
}

// Decision is the result of reconciling a single remote log.
type Decision struct {
	Entry  fc.LogEntry
	Path   string
	Action Action

	// LocalSize is the size of the existing local file for Incomplete logs.
	LocalSize int64
}

// NeedsDownload returns whether the log should be downloaded.
func (d Decision) NeedsDownload() bool {
	return d.Action != UpToDate
}

// Reconcile decides what to do with each remote log. The decisions are
// returned in the order of `remote`.
//
// If no logs have been downloaded yet, only the most recent remote log is
// downloaded, and the rest of the remote logs are ignored. Later passes
// download the logs created after the newest local log, and redownload any
// local logs that are smaller than their remote counterpart.
func (local LocalSnapshot) Reconcile(dir string, remote []fc.LogEntry) []Decision {
	latest, ok := local.Latest()
	if !ok {
		newest, ok := newestEntry(remote)
		if !ok {
			return nil
		}

		return []Decision{{
			Entry:  newest,
			Path:   ArtifactPath(dir, newest),
			Action: Missing,
		}}
	}

	var decisions []Decision
	for _, entry := range remote {
		decision := Decision{
			Entry:  entry,
			Path:   ArtifactPath(dir, entry),
			Action: UpToDate,
		}

		if artifact, exists := local[decision.Path]; exists {
			if artifact.Size < 0 || uint64(artifact.Size) < entry.SizeBytes {
				decision.Action = Incomplete
				decision.LocalSize = artifact.Size
			}
		} else if entry.Date > latest {
			decision.Action = Missing
		}
		decisions = append(decisions, decision)
	}
	return decisions
}

func newestEntry(entries []fc.LogEntry) (newest fc.LogEntry, ok bool) {
	for _, entry := range entries {
		if !ok || entry.Date > newest.Date {
			newest = entry
			ok = true
		}
	}
	return newest, ok
}
