// Package cima implements farmanote.Registry against the AEMPS CIMA REST
// API (https://cima.aemps.es). The registry's responses are shape-wise
// inconsistent (bare arrays, paginated wrappers, singleton objects); this
// package normalizes them into farmanote.Medicament records.
package cima

import (
	"context"
	"net/url"

	"github.com/msoler/farmanote"
)

// DefaultBaseURL is the production CIMA REST endpoint.
const DefaultBaseURL = "https://cima.aemps.es/cima/rest"

// Ensure Client implements farmanote.Registry at compile time.
var _ farmanote.Registry = (*Client)(nil)

// Client queries the CIMA registry through an injected Fetcher.
type Client struct {
	fetcher farmanote.Fetcher
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the registry base URL. Used for tests and for
// environments that front CIMA with a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a registry client that fetches through fetcher.
func NewClient(fetcher farmanote.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns the records matching a product name, in registry order.
// An empty result is not an error; it signals "nothing found".
func (c *Client) Search(ctx context.Context, name string) ([]*farmanote.Medicament, error) {
	endpoint := c.baseURL + "/medicamentos?nombre=" + url.QueryEscape(name)

	body, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return nil, farmanote.Errorf(farmanote.EUNAVAILABLE, "cima search %q: %v", name, err)
	}

	records, err := toRecords([]byte(body))
	if err != nil {
		return nil, farmanote.Errorf(farmanote.EINTERNAL, "cima search %q: %v", name, err)
	}

	meds := make([]*farmanote.Medicament, 0, len(records))
	for _, rec := range records {
		med, err := decodeMedicament(rec)
		if err != nil {
			return nil, farmanote.Errorf(farmanote.EINTERNAL, "cima search %q: %v", name, err)
		}
		meds = append(meds, med)
	}
	return meds, nil
}

// Detail returns the full record for a registry number. Detail records
// carry the complete ingredient and document metadata that search results
// omit. Returns ENOTFOUND when the registry has no such record.
func (c *Client) Detail(ctx context.Context, registryNumber string) (*farmanote.Medicament, error) {
	endpoint := c.baseURL + "/medicamento?nregistro=" + url.QueryEscape(registryNumber)

	body, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return nil, farmanote.Errorf(farmanote.EUNAVAILABLE, "cima detail %q: %v", registryNumber, err)
	}

	records, err := toRecords([]byte(body))
	if err != nil {
		return nil, farmanote.Errorf(farmanote.EINTERNAL, "cima detail %q: %v", registryNumber, err)
	}
	if len(records) == 0 {
		return nil, farmanote.Errorf(farmanote.ENOTFOUND, "no medicament with nregistro %q", registryNumber)
	}

	med, err := decodeMedicament(records[0])
	if err != nil {
		return nil, farmanote.Errorf(farmanote.EINTERNAL, "cima detail %q: %v", registryNumber, err)
	}
	return med, nil
}
