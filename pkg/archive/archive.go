// Package archive uploads logs to the remote flight review server.
package archive

//go:generate mockery -name Client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/logloader/pkg/errors"
	"github.com/sidkik/logloader/pkg/version"
)

const uploadDescription = "Uploaded by logloader"

// Client is the interface for delivering logs to the archive.
type Client interface {
	// Reachable returns nil if the archive responds to a request for its
	// root page.
	Reachable(ctx context.Context) error

	// Upload sends the log at `path` to the archive, and returns the URL
	// where it can be viewed.
	Upload(ctx context.Context, path string) (string, error)
}

// Settings configures the uploads.
type Settings struct {
	// Server is the archive host, e.g. `review.px4.io`. A scheme may be
	// included; https is used otherwise.
	Server string

	// Email identifies the uploader to the archive.
	Email string

	// Public controls whether the uploaded logs are listed publicly.
	Public bool

	// Log defaults to the standard logger.
	Log *logrus.Logger
}

type client struct {
	fs       afero.Fs
	baseURL  string
	settings Settings
	http     *http.Client
	log      *logrus.Logger
}

// New returns a Client that reads logs from `fs`.
func New(fs afero.Fs, settings Settings) Client {
	logger := settings.Log
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &client{
		fs:       fs,
		baseURL:  baseURL(settings.Server),
		settings: settings,
		http: &http.Client{
			// A successful upload responds with a redirect to the uploaded
			// log, so the redirect must be returned rather than followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: logger,
	}
}

func baseURL(server string) string {
	server = strings.TrimSuffix(server, "/")
	if strings.HasPrefix(server, "http://") || strings.HasPrefix(server, "https://") {
		return server
	}
	return "https://" + server
}

func (c *client) newRequest(ctx context.Context, method, path string, body io.Reader) (
	*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	return req, nil
}

func (c *client) Reachable(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return errors.WithContext(err, "create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithContext(err, "get")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *client) Upload(ctx context.Context, path string) (string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return "", errors.WithContext(err, "open")
	}
	defer f.Close()

	body, contentType, size, err := c.multipartBody(f, filepath.Base(path))
	if err != nil {
		return "", errors.WithContext(err, "build form")
	}

	c.log.WithFields(logrus.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(size)),
	}).Info("Uploading log")

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", body)
	if err != nil {
		return "", errors.WithContext(err, "create request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.WithContext(err, "post")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", errors.UploadFailure{Path: path, StatusCode: resp.StatusCode}
	}

	location := resp.Header.Get("Location")
	if strings.HasPrefix(location, "/") {
		location = c.baseURL + location
	}
	return location, nil
}

// multipartBody builds the upload form expected by the archive. The backend
// treats `type=flightreport` as the marker for public logs.
func (c *client) multipartBody(f io.Reader, filename string) (
	body *bytes.Buffer, contentType string, size int64, err error) {

	logType := "personal"
	public := "false"
	if c.settings.Public {
		logType = "flightreport"
		public = "true"
	}

	fields := []struct{ key, value string }{
		{"type", logType},
		{"description", uploadDescription},
		{"feedback", ""},
		{"email", c.settings.Email},
		{"source", "auto"},
		{"videoUrl", ""},
		{"rating", ""},
		{"windSpeed", ""},
		{"public", public},
	}

	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, field := range fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", 0, errors.WithContext(err, field.key)
		}
	}

	part, err := w.CreateFormFile("filearg", filename)
	if err != nil {
		return nil, "", 0, errors.WithContext(err, "create file field")
	}

	size, err = io.Copy(part, f)
	if err != nil {
		return nil, "", 0, errors.WithContext(err, "copy log")
	}

	if err := w.Close(); err != nil {
		return nil, "", 0, errors.WithContext(err, "close")
	}
	return body, w.FormDataContentType(), size, nil
}
