package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/typgrab"
)

// DefaultImageDir is where materialized images are written unless
// overridden.
const DefaultImageDir = "images"

// DefaultImageExt is the fallback extension when neither the response
// content type nor the URL path reveals the format.
const DefaultImageExt = ".jpg"

// contentTypeExts maps image content types to file extensions.
var contentTypeExts = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Ensure ImageStore implements typgrab.ImageStore at compile time.
var _ typgrab.ImageStore = (*ImageStore)(nil)

// ImageStore downloads images over HTTP and writes them under a local
// directory. Filenames are derived from a hash of the source URL, so the
// same URL always lands on the same path and repeated references reuse
// the file. Downloads are memoized per store instance to avoid refetching
// an image referenced multiple times in one document.
type ImageStore struct {
	client  *http.Client
	dir     string
	timeout time.Duration

	mu   sync.Mutex
	memo map[string]string
}

// ImageStoreOption configures an ImageStore.
type ImageStoreOption func(*ImageStore)

// WithImageTimeout sets the timeout for image downloads.
func WithImageTimeout(d time.Duration) ImageStoreOption {
	return func(s *ImageStore) {
		s.timeout = d
	}
}

// WithImageClient overrides the HTTP client used for downloads.
func WithImageClient(c *http.Client) ImageStoreOption {
	return func(s *ImageStore) {
		s.client = c
	}
}

// NewImageStore creates an ImageStore writing under dir.
// An empty dir defaults to DefaultImageDir.
func NewImageStore(dir string, opts ...ImageStoreOption) *ImageStore {
	if dir == "" {
		dir = DefaultImageDir
	}
	s := &ImageStore{
		dir:     dir,
		timeout: DefaultFetchTimeout,
		memo:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	return s
}

// Materialize downloads the image at rawURL and returns its local path,
// using forward slashes so the path can be embedded in markup directly.
func (s *ImageStore) Materialize(ctx context.Context, rawURL string) (string, error) {
	s.mu.Lock()
	if p, ok := s.memo[rawURL]; ok {
		s.mu.Unlock()
		return p, nil
	}
	s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	name := Filename(rawURL, resp.Header.Get("Content-Type"))
	diskPath := filepath.Join(s.dir, name)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(diskPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(diskPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	local := path.Join(filepath.ToSlash(s.dir), name)

	s.mu.Lock()
	s.memo[rawURL] = local
	s.mu.Unlock()

	return local, nil
}

// Filename computes the stable local filename for an image URL.
// The base name hashes the URL string; the extension comes from the
// response content type, falling back to the URL path's extension, then
// to DefaultImageExt.
func Filename(rawURL, contentType string) string {
	ext := extensionFor(rawURL, contentType)
	return fmt.Sprintf("%016x%s", xxhash.Sum64String(rawURL), ext)
}

func extensionFor(rawURL, contentType string) string {
	ct := strings.ToLower(contentType)
	// Strip any charset suffix before the map lookup.
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ext, ok := contentTypeExts[ct]; ok {
		return ext
	}

	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}

	return DefaultImageExt
}
