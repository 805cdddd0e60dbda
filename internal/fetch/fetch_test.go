// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tno-evidence/internal/catalog"
	"github.com/pdiddy/tno-evidence/internal/httputil"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

const sampleCSV = `Object_Name,Semi_Major_Axis_AU,Eccentricity,Inclination_deg,Perihelion_AU,Aphelion_AU,Ascending_Node_deg,Perihelion_Arg_deg
Sedna,506,0.85,11.9,76,936,144.5,311.5
2012 VP113,320,0.75,25,55,585,90.8,293.8
`

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(url string) types.FetchConfig {
	cfg := types.DefaultConfig().Fetch
	cfg.URL = url
	cfg.Timeout = 5 * time.Second
	return cfg
}

func TestCatalogDownloads(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, sampleCSV)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "data", "catalog.csv")
	cfg := testConfig(ts.URL)

	res, err := Catalog(context.Background(), ts.Client(), cfg, dest, false, quiet())
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, dest, res.Path)
	assert.Equal(t, int64(len(sampleCSV)), res.Bytes)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, cfg.UserAgent, gotUA)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))

	assertNoTempFiles(t, filepath.Dir(dest))
}

func TestCatalogSkipsExisting(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, sampleCSV)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	res, err := Catalog(context.Background(), ts.Client(), testConfig(ts.URL), dest, false, quiet())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	res, err = Catalog(context.Background(), ts.Client(), testConfig(ts.URL), dest, true, quiet())
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestCatalogRetriesBusyServer(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, sampleCSV)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "catalog.csv")
	_, err := Catalog(context.Background(), ts.Client(), testConfig(ts.URL), dest, false, quiet())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCatalogKeepsOldFileOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "not a catalog",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				io.WriteString(w, "<html>maintenance</html>\n")
			},
			wantErr: catalog.ErrMissingColumn,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			dir := t.TempDir()
			dest := filepath.Join(dir, "catalog.csv")
			require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

			_, err := Catalog(context.Background(), ts.Client(), testConfig(ts.URL), dest, true, quiet())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Equal(t, "old", string(data))
			assertNoTempFiles(t, dir)
		})
	}
}

func TestCatalogNoURL(t *testing.T) {
	_, err := Catalog(context.Background(), http.DefaultClient, types.FetchConfig{}, filepath.Join(t.TempDir(), "x.csv"), false, nil)
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestNewClient(t *testing.T) {
	assert.Equal(t, 60*time.Second, NewClient(types.DefaultConfig().Fetch).Timeout)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".fetch-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCatalogSendsToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"with token", "tok_123", "Bearer tok_123"},
		{"without token", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				io.WriteString(w, sampleCSV)
			}))
			defer ts.Close()

			cfg := testConfig(ts.URL)
			cfg.Token = tt.token
			_, err := Catalog(context.Background(), ts.Client(), cfg, filepath.Join(t.TempDir(), "c.csv"), false, quiet())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
