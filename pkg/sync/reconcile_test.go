package sync

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/sidkik/logloader/pkg/flightcontroller"
)

const logsDir = "/logs"

var (
	t1 = fc.LogEntry{ID: 0, Date: "2024-05-28T08:00:00Z", SizeBytes: 100}
	t2 = fc.LogEntry{ID: 1, Date: "2024-05-29T08:00:00Z", SizeBytes: 200}
	t3 = fc.LogEntry{ID: 2, Date: "2024-05-30T08:00:00Z", SizeBytes: 300}
	t4 = fc.LogEntry{ID: 3, Date: "2024-05-31T08:00:00Z", SizeBytes: 400}
)

func snapshot(artifacts ...LocalArtifact) LocalSnapshot {
	local := LocalSnapshot{}
	for _, a := range artifacts {
		local[a.Path] = a
	}
	return local
}

func local(entry fc.LogEntry, size int64) LocalArtifact {
	return LocalArtifact{Path: ArtifactPath(logsDir, entry), Size: size}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name   string
		local  LocalSnapshot
		remote []fc.LogEntry
		exp    []Decision
	}{
		{
			name:   "no local logs downloads only the newest",
			local:  snapshot(),
			remote: []fc.LogEntry{t1, t3, t2},
			exp: []Decision{
				{Entry: t3, Path: "/logs/2024-05-30T08:00:00Z.ulg", Action: Missing},
			},
		},
		{
			name:   "no local logs and no remote logs",
			local:  snapshot(),
			remote: nil,
			exp:    nil,
		},
		{
			name: "files that aren't logs don't count as a baseline",
			local: snapshot(LocalArtifact{Path: "/logs/notes.txt", Size: 10},
				LocalArtifact{Path: "/logs/.2024-05-29T08:00:00Z.ulg.swp", Size: 10}),
			remote: []fc.LogEntry{t1, t2},
			exp: []Decision{
				{Entry: t2, Path: "/logs/2024-05-29T08:00:00Z.ulg", Action: Missing},
			},
		},
		{
			name:   "incremental sync",
			local:  snapshot(local(t2, 200)),
			remote: []fc.LogEntry{t1, t2, t3, t4},
			exp: []Decision{
				{Entry: t1, Path: "/logs/2024-05-28T08:00:00Z.ulg", Action: UpToDate},
				{Entry: t2, Path: "/logs/2024-05-29T08:00:00Z.ulg", Action: UpToDate},
				{Entry: t3, Path: "/logs/2024-05-30T08:00:00Z.ulg", Action: Missing},
				{Entry: t4, Path: "/logs/2024-05-31T08:00:00Z.ulg", Action: Missing},
			},
		},
		{
			name:   "incomplete log",
			local:  snapshot(local(t2, 200), local(t3, 120)),
			remote: []fc.LogEntry{t2, t3},
			exp: []Decision{
				{Entry: t2, Path: "/logs/2024-05-29T08:00:00Z.ulg", Action: UpToDate},
				{Entry: t3, Path: "/logs/2024-05-30T08:00:00Z.ulg", Action: Incomplete, LocalSize: 120},
			},
		},
		{
			name:   "older incomplete logs are redownloaded",
			local:  snapshot(local(t1, 1), local(t3, 300)),
			remote: []fc.LogEntry{t1, t2, t3},
			exp: []Decision{
				{Entry: t1, Path: "/logs/2024-05-28T08:00:00Z.ulg", Action: Incomplete, LocalSize: 1},
				{Entry: t2, Path: "/logs/2024-05-29T08:00:00Z.ulg", Action: UpToDate},
				{Entry: t3, Path: "/logs/2024-05-30T08:00:00Z.ulg", Action: UpToDate},
			},
		},
		{
			name:   "local file larger than the remote log is up to date",
			local:  snapshot(local(t2, 500)),
			remote: []fc.LogEntry{t2},
			exp: []Decision{
				{Entry: t2, Path: "/logs/2024-05-29T08:00:00Z.ulg", Action: UpToDate},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.local.Reconcile(logsDir, test.remote))
		})
	}
}

func TestLatest(t *testing.T) {
	_, ok := snapshot().Latest()
	assert.False(t, ok)

	latest, ok := snapshot(local(t1, 1), local(t3, 1), local(t2, 1),
		LocalArtifact{Path: "/logs/9999.ulg"}).Latest()
	assert.True(t, ok)
	assert.Equal(t, t3.Date, latest)
}

func TestSnapshotLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logs/2024-05-30T08:00:00Z.ulg", []byte("abc"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/logs/notes.txt", []byte("a"), 0644))
	require.NoError(t, fs.MkdirAll("/logs/subdir", 0755))

	local, err := SnapshotLocal(fs, logsDir)
	require.NoError(t, err)
	assert.Equal(t, LocalSnapshot{
		"/logs/2024-05-30T08:00:00Z.ulg": {Path: "/logs/2024-05-30T08:00:00Z.ulg", Size: 3},
		"/logs/notes.txt":                {Path: "/logs/notes.txt", Size: 1},
	}, local)
	assert.Equal(t, []LocalArtifact{
		{Path: "/logs/2024-05-30T08:00:00Z.ulg", Size: 3},
	}, local.Logs())
}

func TestSnapshotLocalMissingDir(t *testing.T) {
	_, err := SnapshotLocal(afero.NewMemMapFs(), logsDir)
	assert.Error(t, err)
}
