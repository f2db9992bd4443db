// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-hub/internal/upstream"
	"github.com/pdiddy/research-hub/pkg/types"
)

type stubFetcher struct {
	calls int
}

func (s *stubFetcher) FetchPapers(ctx context.Context, rawQuery string) (*upstream.Result, error) {
	s.calls++
	return &upstream.Result{Status: 200, Body: []byte(`{"total":0,"offset":0,"data":[]}`)}, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(types.Config{}, quietLogger(), &stubFetcher{})

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "healthy")
}

func TestPapersRouteWired(t *testing.T) {
	fetch := &stubFetcher{}
	srv := New(types.Config{}, quietLogger(), fetch)

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/api/papers?query=test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, fetch.calls)
}

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	page := `<html><body>Research Hub</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644))

	cfg := types.Config{Server: types.ServerConfig{WebDir: dir}}
	srv := New(cfg, quietLogger(), &stubFetcher{})

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Research Hub")
}

func TestMissingWebDirDoesNotBreakRoutes(t *testing.T) {
	cfg := types.Config{Server: types.ServerConfig{WebDir: filepath.Join(t.TempDir(), "does-not-exist")}}
	srv := New(cfg, quietLogger(), &stubFetcher{})

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
