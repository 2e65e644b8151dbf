// Package wordfreq extracts frequency-ranked word lists from the wordfreq dataset.
package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/evilword/internal/wordlist"
)

const pypiEndpoint = "https://pypi.org/pypi/wordfreq/json"

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

type pypiFile struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

type pypiResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []pypiFile `json:"urls"`
}

// DownloadLatestWheel fetches the latest wordfreq wheel into cacheDir, reusing a
// cached copy of the same file.
func DownloadLatestWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	var payload pypiResponse
	if err := getJSON(ctx, pypiEndpoint, &payload); err != nil {
		return Wheel{}, err
	}
	if payload.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}
	file, ok := pickWheel(payload.URLs)
	if !ok {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	wheel := Wheel{Version: payload.Info.Version, Path: filepath.Join(cacheDir, file.Filename), Filename: file.Filename}
	if _, err := os.Stat(wheel.Path); err == nil {
		wheel.Cached = true
		return wheel, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	if err := download(ctx, file.URL, wheel.Path); err != nil {
		return Wheel{}, err
	}
	return wheel, nil
}

// ExtractRanked returns up to limit words for lang, most frequent first, keeping
// only words accepted by the language filter.
func ExtractRanked(wheelPath, lang string, limit int) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	lang = strings.ToLower(lang)

	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	file := findDataFile(reader.File, lang)
	if file == nil {
		return nil, fmt.Errorf("no word list for %q in wheel", lang)
	}
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var src io.Reader = rc
	if strings.HasSuffix(file.Name, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		src = gz
	}

	root, err := newMsgpackReader(src).value()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file.Name, err)
	}
	ranked, err := rankedWords(root)
	if err != nil {
		return nil, err
	}

	words := wordlist.Clean(ranked, wordlist.FilterForLang(lang))
	if len(words) > limit {
		words = words[:limit]
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found for %s: %w", lang, wordlist.ErrEmptyList)
	}
	return words, nil
}

// WriteAttribution writes the attribution notice required by the wordfreq data license.
func WriteAttribution(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	text := strings.Join([]string{
		"Word frequencies from the wordfreq dataset: https://github.com/rspeer/wordfreq",
		"Data license: CC BY-SA 4.0 (https://creativecommons.org/licenses/by-sa/4.0/).",
		"Changes were made: filtered to lowercase a-z words and truncated.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	return nil
}

// rankedWords flattens a cBpack payload: a header map followed by one array of
// words per frequency bucket, most frequent bucket first.
func rankedWords(root any) ([]string, error) {
	items, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("unsupported wordfreq root type %T", root)
	}
	var words []string
	for _, item := range items {
		bucket, ok := item.([]any)
		if !ok {
			continue
		}
		for _, w := range bucket {
			if s, ok := w.(string); ok {
				words = append(words, s)
			}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}
	return words, nil
}

func findDataFile(files []*zip.File, lang string) *zip.File {
	var fallback *zip.File
	for _, f := range files {
		name := strings.ToLower(f.Name)
		if !strings.HasPrefix(name, "wordfreq/data/") {
			continue
		}
		base := strings.TrimSuffix(strings.TrimSuffix(strings.TrimPrefix(name, "wordfreq/data/"), ".gz"), ".msgpack")
		switch base {
		case "large_" + lang:
			return f
		case "small_" + lang:
			fallback = f
		}
	}
	return fallback
}

func pickWheel(files []pypiFile) (pypiFile, bool) {
	var first pypiFile
	for _, f := range files {
		if f.Packagetype != "bdist_wheel" {
			continue
		}
		if strings.HasSuffix(f.Filename, "py3-none-any.whl") {
			return f, true
		}
		if first.URL == "" {
			first = f
		}
	}
	return first, first.URL != ""
}

func getJSON(ctx context.Context, url string, out any) error {
	resp, err := httpGet(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pypi response: %w", err)
	}
	return nil
}

func download(ctx context.Context, url, dest string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "wordfreq-*.whl")
	if err != nil {
		return fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	resp, err := httpGet(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move wheel into cache: %w", err)
	}
	return nil
}

func httpGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status for %s: %s", url, resp.Status)
	}
	return resp, nil
}
