package archive

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/logloader/pkg/errors"
	"github.com/sidkik/logloader/pkg/version"
)

const logPath = "/logs/2024-05-30T04:56:06Z.ulg"

func TestReachable(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expError bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "server error", status: http.StatusInternalServerError, expError: true},
		{name: "redirect isn't followed", status: http.StatusFound, expError: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodGet, r.Method)
					assert.Equal(t, "/", r.URL.Path)
					if test.status == http.StatusFound {
						w.Header().Set("Location", "/elsewhere")
					}
					w.WriteHeader(test.status)
				}))
			defer server.Close()

			c := New(afero.NewMemMapFs(), Settings{Server: server.URL})
			err := c.Reachable(context.Background())
			if test.expError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUploadFields(t *testing.T) {
	tests := []struct {
		name      string
		public    bool
		expType   string
		expPublic string
	}{
		{name: "public", public: true, expType: "flightreport", expPublic: "true"},
		{name: "private", public: false, expType: "personal", expPublic: "false"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, logPath, []byte("ulog contents"), 0644))

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodPost, r.Method)
					assert.Equal(t, "/upload", r.URL.Path)
					assert.Equal(t, "logloader/"+version.Version, r.UserAgent())
					if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
						return
					}

					assert.Equal(t, test.expType, r.FormValue("type"))
					assert.Equal(t, test.expPublic, r.FormValue("public"))
					assert.Equal(t, "pilot@example.com", r.FormValue("email"))
					assert.Equal(t, "auto", r.FormValue("source"))
					assert.Equal(t, uploadDescription, r.FormValue("description"))
					for _, empty := range []string{"feedback", "videoUrl", "rating", "windSpeed"} {
						_, ok := r.MultipartForm.Value[empty]
						assert.True(t, ok, "missing field %s", empty)
					}

					file, header, err := r.FormFile("filearg")
					if !assert.NoError(t, err) {
						return
					}
					defer file.Close()
					contents, err := ioutil.ReadAll(file)
					assert.NoError(t, err)
					assert.Equal(t, "ulog contents", string(contents))
					assert.Equal(t, "2024-05-30T04:56:06Z.ulg", header.Filename)

					w.Header().Set("Location", "/plot_app?log=1234")
					w.WriteHeader(http.StatusFound)
				}))
			defer server.Close()

			c := New(fs, Settings{
				Server: server.URL,
				Email:  "pilot@example.com",
				Public: test.public,
			})
			url, err := c.Upload(context.Background(), logPath)
			assert.NoError(t, err)
			assert.Equal(t, server.URL+"/plot_app?log=1234", url)
		})
	}
}

func TestUploadRequiresRedirect(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, logPath, []byte("ulog contents"), 0644))

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	defer server.Close()

	c := New(fs, Settings{Server: server.URL})
	_, err := c.Upload(context.Background(), logPath)
	assert.Equal(t, errors.UploadFailure{Path: logPath, StatusCode: http.StatusOK}, err)
}

func TestUploadMissingFile(t *testing.T) {
	c := New(afero.NewMemMapFs(), Settings{Server: "http://127.0.0.1:1"})
	_, err := c.Upload(context.Background(), logPath)
	assert.Error(t, err)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://review.px4.io", baseURL("review.px4.io"))
	assert.Equal(t, "https://review.px4.io", baseURL("review.px4.io/"))
	assert.Equal(t, "http://localhost:5006", baseURL("http://localhost:5006"))
}

func TestUploadLogsToConfiguredLogger(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, logPath, []byte("ulog contents"), 0644))

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/plot_app?log=1")
			w.WriteHeader(http.StatusFound)
		}))
	defer server.Close()

	logger, hook := logrusTest.NewNullLogger()
	c := New(fs, Settings{Server: server.URL, Log: logger})
	_, err := c.Upload(context.Background(), logPath)
	require.NoError(t, err)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Uploading log", hook.LastEntry().Message)
	assert.Equal(t, logPath, hook.LastEntry().Data["path"])
	assert.Equal(t, "13 B", hook.LastEntry().Data["size"])
}

func TestUploadDeadline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, logPath, []byte("ulog contents"), 0644))

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
	defer server.Close()
	defer close(release)

	logger, _ := logrusTest.NewNullLogger()
	c := New(fs, Settings{Server: server.URL, Log: logger})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Upload(ctx, logPath)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
