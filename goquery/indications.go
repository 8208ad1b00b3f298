// Package goquery implements farmanote.IndicationsExtractor over the HTML
// regulatory documents CIMA links from a medicament record (fichas
// técnicas and prospectos).
package goquery

import (
	"context"

	"github.com/msoler/farmanote"
)

// MaxIndicationsLen bounds the extracted excerpt, in runes, including the
// ellipsis marker.
const MaxIndicationsLen = 1200

// Ensure Extractor implements farmanote.IndicationsExtractor at compile time.
var _ farmanote.IndicationsExtractor = (*Extractor)(nil)

// Extractor fetches a medicament's preferred regulatory document and
// extracts its indications section.
type Extractor struct {
	fetcher farmanote.Fetcher
}

// NewExtractor creates an Extractor that fetches documents through fetcher.
func NewExtractor(fetcher farmanote.Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract returns the bounded indications excerpt for med. The ficha
// técnica is preferred as the source; any usable HTML reference (including
// the prospecto) is accepted as fallback. Returns ENOTFOUND when no usable
// document exists or no section heuristic matches; callers treat the
// whole path as best-effort.
func (e *Extractor) Extract(ctx context.Context, med *farmanote.Medicament) (string, error) {
	ref, ok := med.PreferredDocument()
	if !ok {
		return "", farmanote.Errorf(farmanote.ENOTFOUND, "medicament %q has no usable document", med.Name)
	}

	html, err := e.fetcher.Fetch(ctx, ref.HTMLURL)
	if err != nil {
		return "", farmanote.Errorf(farmanote.EUNAVAILABLE, "fetch document %s: %v", ref.HTMLURL, err)
	}

	plain, err := VisibleText(html)
	if err != nil {
		return "", farmanote.Errorf(farmanote.EINVALID, "parse document %s: %v", ref.HTMLURL, err)
	}

	section, ok := ExtractSection(plain)
	if !ok {
		return "", farmanote.Errorf(farmanote.ENOTFOUND, "no indications section in %s", ref.HTMLURL)
	}

	return Truncate(section, MaxIndicationsLen), nil
}
