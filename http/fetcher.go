// Package http provides the HTTP implementation of farmanote.Fetcher:
// a timeout-bound GET that retries once through a CORS proxy before
// giving up. CIMA and its document hosts are static; no rendering is
// involved.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/msoler/farmanote"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds requests against the JSON registry endpoints.
	DefaultTimeout = 12 * time.Second

	// DocumentTimeout bounds regulatory document (HTML) fetches, which
	// are larger and slower than the JSON endpoints.
	DocumentTimeout = 15 * time.Second

	// DefaultProxyTemplate is the secondary fetch used when the direct
	// request fails. The %s receives the query-escaped target URL.
	DefaultProxyTemplate = "https://api.allorigins.win/raw?url=%s"
)

// Ensure Fetcher implements farmanote.Fetcher at compile time.
var _ farmanote.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources over HTTP. Each attempt carries its own
// timeout; a failed direct request is retried once through the proxy
// template, and if that also fails the original error is returned.
type Fetcher struct {
	client        *http.Client
	timeout       time.Duration
	accept        string
	proxyTemplate string
	limiter       *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAccept sets the Accept header sent with every request.
func WithAccept(accept string) Option {
	return func(f *Fetcher) {
		f.accept = accept
	}
}

// WithProxyTemplate overrides the secondary proxy URL template.
// An empty template disables the proxy retry entirely.
func WithProxyTemplate(template string) Option {
	return func(f *Fetcher) {
		f.proxyTemplate = template
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with a
// burst of 1. Zero or negative rps leaves the fetcher unlimited.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:       DefaultTimeout,
		proxyTemplate: DefaultProxyTemplate,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{}

	return f
}

// Fetch performs a GET against the URL and returns the response body.
// On any direct failure it retries once through the proxy template; when
// the proxy also fails, the original error is what the caller sees.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	body, err := f.get(ctx, url)
	if err == nil {
		return body, nil
	}

	if f.proxyTemplate == "" {
		return "", err
	}

	proxied := fmt.Sprintf(f.proxyTemplate, neturl.QueryEscape(url))
	body, proxyErr := f.get(ctx, proxied)
	if proxyErr != nil {
		return "", err
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if f.accept != "" {
		req.Header.Set("Accept", f.accept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
