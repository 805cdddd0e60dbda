// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads orbital catalogs over HTTP.
//
// Downloads land in a temporary file next to the destination and are
// renamed into place only after the content parses as a catalog, so a
// failed or partial download never replaces a good catalog.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/tno-evidence/internal/catalog"
	"github.com/pdiddy/tno-evidence/internal/httputil"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

// ErrNoURL is returned when no catalog URL is configured.
var ErrNoURL = errors.New("no catalog url configured")

// Result describes one fetch.
type Result struct {
	Path    string
	Bytes   int64
	Records int
	Skipped bool
}

// NewClient returns an HTTP client with the configured timeout.
func NewClient(cfg types.FetchConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Catalog downloads cfg.URL to destPath. An existing file is kept unless
// force is set.
func Catalog(ctx context.Context, client *http.Client, cfg types.FetchConfig, destPath string, force bool, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("fetch")

	if cfg.URL == "" {
		return Result{}, ErrNoURL
	}
	if !force {
		if fi, err := os.Stat(destPath); err == nil {
			logger.Info("skipped, catalog already exists", "path", destPath)
			return Result{Path: destPath, Bytes: fi.Size(), Skipped: true}, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("creating directory %s: %w", filepath.Dir(destPath), err)
	}

	logger.Info("downloading", "url", cfg.URL)
	res, err := download(ctx, client, cfg, destPath, logger)
	if err != nil {
		return Result{}, fmt.Errorf("downloading %s: %w", cfg.URL, err)
	}
	logger.Info("catalog saved", "path", res.Path, "bytes", res.Bytes, "records", res.Records)
	return res, nil
}

func download(ctx context.Context, client *http.Client, cfg types.FetchConfig, destPath string, logger *slog.Logger) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, logger)
	if err != nil {
		return Result{}, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, cfg.URL)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	records, _, err := catalog.Load(tmpPath, logger)
	if err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("validating download: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("renaming temp file: %w", err)
	}
	return Result{Path: destPath, Bytes: n, Records: len(records)}, nil
}
