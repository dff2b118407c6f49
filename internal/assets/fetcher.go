package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/layout"
)

// MaxRedirects is the number of redirect hops a single download may follow.
const MaxRedirects = 5

// DefaultTimeout bounds one entry's download, redirects included.
const DefaultTimeout = 60 * time.Second

// ErrTooManyRedirects is returned when a download exceeds MaxRedirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// Fetcher downloads manifest entries into a project.
type Fetcher struct {
	manifestPath string
	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	log          *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing). Its redirect
// policy is replaced; the Fetcher follows redirects itself.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithTimeout bounds each entry's download. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLogger sets the logger used for per-entry progress.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		f.log = l
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// New creates a Fetcher reading the manifest at manifestPath.
func New(manifestPath string, opts ...Option) *Fetcher {
	f := &Fetcher{
		manifestPath: manifestPath,
		httpClient:   http.DefaultClient,
		timeout:      DefaultTimeout,
		userAgent:    "sasswave-create",
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	c := *f.httpClient
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	f.httpClient = &c
	return f
}

// Failure is one entry that could not be downloaded.
type Failure struct {
	URL string
	Err error
}

// Summary is the outcome of Download.
type Summary struct {
	Downloaded []string // destinations relative to the project, slash-separated
	Skipped    []string // destinations outside the project, relative to it
	Failed     []Failure
}

// Download fetches every manifest entry that applies to framework into
// projectDir. It never fails as a whole: a missing or malformed manifest is
// treated as empty and each entry's failure is recorded and logged.
func (f *Fetcher) Download(ctx context.Context, framework, projectDir string) *Summary {
	sum := &Summary{}

	m, err := LoadManifest(f.manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.log.Info("No assets to download (manifest not found)", zap.String("manifest", f.manifestPath))
		} else {
			f.log.Warn("Unable to read asset manifest", zap.String("manifest", f.manifestPath), zap.Error(err))
		}
		return sum
	}
	for _, r := range m.Rejected {
		f.log.Warn("Ignoring invalid asset manifest entry", zap.Int("index", r.Index), zap.Strings("issues", r.Issues))
	}
	if len(m.Entries) == 0 {
		f.log.Info("No assets to download (manifest is empty)", zap.String("manifest", f.manifestPath))
		return sum
	}

	entries := m.Applicable(framework)
	if len(entries) == 0 {
		f.log.Info("Asset manifest has no entries for this framework; skipping downloads", zap.String("framework", framework))
		return sum
	}

	for _, e := range entries {
		dest, err := e.Destination(projectDir)
		if err != nil {
			f.log.Warn("Failed to download asset", zap.String("url", e.URL), zap.Error(err))
			sum.Failed = append(sum.Failed, Failure{URL: e.URL, Err: err})
			continue
		}
		rel := relDest(projectDir, dest)
		if !layout.Within(projectDir, dest) {
			f.log.Warn("Skipping asset outside project root", zap.String("url", e.URL), zap.String("dest", rel))
			sum.Skipped = append(sum.Skipped, rel)
			continue
		}

		if err := f.Fetch(ctx, e.URL, dest); err != nil {
			f.log.Warn("Failed to download asset", zap.String("url", e.URL), zap.Error(err))
			sum.Failed = append(sum.Failed, Failure{URL: e.URL, Err: err})
			continue
		}

		f.log.Info("Downloaded asset", zap.String("path", rel))
		sum.Downloaded = append(sum.Downloaded, rel)
	}
	return sum
}

// relDest renders dest relative to projectDir with forward slashes. Paths that
// cannot be made relative are returned as given.
func relDest(projectDir, dest string) string {
	rel, err := filepath.Rel(projectDir, dest)
	if err != nil {
		return filepath.ToSlash(dest)
	}
	return filepath.ToSlash(rel)
}

// Fetch downloads rawURL to dest, following up to MaxRedirects redirects.
// dest is only created once a 2xx response has been fully received.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, dest string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.follow(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating asset directory: %w", err)
	}
	return writeAtomic(dest, resp.Body)
}

// follow issues GET requests until a non-redirect response arrives. The caller
// owns the returned body.
func (f *Fetcher) follow(ctx context.Context, rawURL string) (*http.Response, error) {
	current, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url %q: %w", rawURL, err)
	}

	for hops := 0; ; hops++ {
		if current.Scheme != "http" && current.Scheme != "https" {
			return nil, fmt.Errorf("unsupported scheme %q in %s", current.Scheme, current)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("downloading %s: %w", rawURL, err)
		}

		loc := resp.Header.Get("Location")
		if resp.StatusCode >= 300 && resp.StatusCode < 400 && loc != "" {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if hops >= MaxRedirects {
				return nil, fmt.Errorf("%w while downloading %s", ErrTooManyRedirects, rawURL)
			}
			next, err := current.Parse(loc)
			if err != nil {
				return nil, fmt.Errorf("parsing redirect location %q: %w", loc, err)
			}
			current = next
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("request for %s failed with status %d", rawURL, resp.StatusCode)
		}
		return resp, nil
	}
}

// writeAtomic streams r into a temporary file beside dest and renames it into
// place. The temporary file is removed on any failure.
func writeAtomic(dest string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", dest, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", dest, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving %s into place: %w", dest, err)
	}
	return nil
}
