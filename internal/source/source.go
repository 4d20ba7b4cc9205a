// Package source resolves palette inputs into lines of color expressions.
//
// An input argument may be a local file path, a glob pattern (expanded with
// doublestar so ** works across directories), or an http(s) URL. Remote
// palettes are fetched with retries and, when caching is enabled, fall back
// to the last successfully fetched copy on disk — so a flaky network does
// not break a palette that worked yesterday.
//
// The package only splits content into numbered, non-blank lines; parsing
// the expressions themselves is the css package's job.
package source

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-retryablehttp"
	"tools.zach/dev/palette/internal/atomicfile"
)

// maxPaletteBytes bounds a remote palette download.
const maxPaletteBytes = 1 << 20 // 1 MiB

// ///////////////////////////////////////////////
// Lines
// ///////////////////////////////////////////////

// Line is a single color expression with its position in the source.
type Line struct {
	// Number is the 1-based line number in the originating content.
	// Blank lines count toward numbering but are not returned.
	Number int
	// Text is the expression with surrounding whitespace trimmed.
	Text string
}

// Lines splits content into trimmed, non-blank [Line] values. Line numbers
// are 1-based and include skipped blank lines, so reported positions match
// what an editor shows.
func Lines(content []byte) []Line {
	var out []Line
	sc := bufio.NewScanner(strings.NewReader(string(content)))
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		out = append(out, Line{Number: n, Text: text})
	}
	return out
}

// ///////////////////////////////////////////////
// Argument Expansion
// ///////////////////////////////////////////////

// IsURL reports whether arg is an http(s) URL rather than a local path.
func IsURL(arg string) bool {
	lower := strings.ToLower(arg)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// hasGlobMeta reports whether the pattern contains glob metacharacters.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Expand resolves input arguments into concrete sources. URLs pass through
// untouched. Glob patterns expand via doublestar; a pattern that matches
// nothing is an error so typos don't silently parse zero files. Plain paths
// pass through even when missing — the read reports the real error.
func Expand(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if IsURL(arg) || !hasGlobMeta(arg) {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob pattern %q matched no files", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// ///////////////////////////////////////////////
// Fetcher
// ///////////////////////////////////////////////

// Fetcher reads palette content from local files and remote URLs.
type Fetcher struct {
	// client is the retrying HTTP client used for remote palettes.
	client *retryablehttp.Client
	// cacheDir is where fetched palettes are mirrored for offline fallback;
	// empty disables caching.
	cacheDir string
}

// Options configures a [Fetcher].
type Options struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
	// RetryMax is the number of retries after a failed request.
	RetryMax int
	// CacheDir enables the on-disk fallback copy when non-empty.
	CacheDir string
}

// NewFetcher creates a Fetcher with the given options.
func NewFetcher(opts Options) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	client.HTTPClient.Timeout = opts.Timeout
	client.Logger = nil // suppress retryablehttp's default logging

	return &Fetcher{
		client:   client,
		cacheDir: opts.CacheDir,
	}
}

// Read returns the content of a source resolved by [Expand]. Local paths
// read directly. URLs fetch via [Fetcher.fetchURL]; when the fetch fails
// and a cached copy exists, the cache is returned together with a non-nil
// error describing the fallback, so callers can warn without failing.
func (f *Fetcher) Read(src string) ([]byte, error) {
	if !IsURL(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read palette file: %w", err)
		}
		return data, nil
	}

	data, err := f.fetchURL(src)
	if err == nil {
		if cacheErr := f.writeCache(src, data); cacheErr != nil {
			return data, fmt.Errorf("fetched but cache write failed: %w", cacheErr)
		}
		return data, nil
	}

	cached, cacheErr := f.readCache(src)
	if cacheErr == nil {
		return cached, fmt.Errorf("using cached palette: fetch failed: %w", err)
	}
	return nil, fmt.Errorf("fetch %s: %w", src, err)
}

// fetchURL downloads a palette from the given URL, bounding the response size.
func (f *Fetcher) fetchURL(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxPaletteBytes+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(body)) > maxPaletteBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxPaletteBytes)
	}
	return body, nil
}

// ///////////////////////////////////////////////
// Cache
// ///////////////////////////////////////////////

// cachePath maps a URL to its cache file, keyed by a content-independent
// hash of the URL so distinct palettes never collide.
func (f *Fetcher) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(f.cacheDir, hex.EncodeToString(sum[:8])+".palette")
}

// writeCache mirrors fetched content to disk. A disabled cache is a no-op.
func (f *Fetcher) writeCache(url string, data []byte) error {
	if f.cacheDir == "" {
		return nil
	}
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	return atomicfile.Write(f.cachePath(url), data, 0o644)
}

// readCache returns the cached copy for url, if any.
func (f *Fetcher) readCache(url string) ([]byte, error) {
	if f.cacheDir == "" {
		return nil, fmt.Errorf("cache disabled")
	}
	data, err := os.ReadFile(f.cachePath(url))
	if err != nil {
		return nil, fmt.Errorf("reading palette cache: %w", err)
	}
	return data, nil
}
