package farmanote

import (
	"context"
	"strings"
)

// DocumentType identifies a regulatory document kind as CIMA encodes it.
type DocumentType int

// Document types attached to a medicament record.
const (
	DocFichaTecnica DocumentType = 1 // technical data sheet
	DocProspecto    DocumentType = 2 // patient leaflet
)

// DocumentRef points at one regulatory document for a medicament.
type DocumentRef struct {
	Type    DocumentType `json:"tipo"`
	HTMLURL string       `json:"urlHtml"`
}

// Usable reports whether the reference can serve as an indications source.
// A reference without an HTML URL is skipped.
func (d DocumentRef) Usable() bool {
	return d.HTMLURL != ""
}

// Medicament is a registry record for one medicinal product. Search
// results carry at least Name and RegistryNumber; detail records are
// strictly richer (ingredients and document references).
type Medicament struct {
	RegistryNumber string        `json:"nregistro"`
	Name           string        `json:"nombre"`
	Ingredients    []string      `json:"ingredients"` // registry order, not normalized
	Documents      []DocumentRef `json:"docs"`
}

// PreferredDocument returns the indications source for the medicament:
// the first usable ficha técnica, else the first usable reference of any
// type (including the prospecto). ok is false when nothing is usable.
func (m *Medicament) PreferredDocument() (ref DocumentRef, ok bool) {
	for _, d := range m.Documents {
		if d.Type == DocFichaTecnica && d.Usable() {
			return d, true
		}
	}
	for _, d := range m.Documents {
		if d.Usable() {
			return d, true
		}
	}
	return DocumentRef{}, false
}

// Registry looks up medicament records by name and by registry number.
type Registry interface {
	// Search returns the records matching a product name, in registry
	// order. An empty slice means nothing matched; it is not an error.
	Search(ctx context.Context, name string) ([]*Medicament, error)

	// Detail returns the full record for a registry number.
	// Returns ENOTFOUND if the registry has no such record.
	Detail(ctx context.Context, registryNumber string) (*Medicament, error)
}

// IndicationsExtractor produces the bounded therapeutic-use excerpt for a
// medicament from its regulatory documents.
type IndicationsExtractor interface {
	// Extract fetches the preferred document and returns the indications
	// text. Returns ENOTFOUND when no usable document exists or no
	// indications section can be located.
	Extract(ctx context.Context, med *Medicament) (string, error)
}

// Resolution is the outcome of resolving one user query. It is produced
// fresh per invocation and never stored.
type Resolution struct {
	// Query is the trimmed text the user supplied.
	Query string

	// Brand is the canonical display form of the product name.
	Brand string

	// Ingredients are the normalized active-ingredient names, in
	// registry order.
	Ingredients []string

	// Variant is the search variant that matched, or "" when the
	// literal query did.
	Variant string

	// Medicament is the record the resolution was derived from.
	Medicament *Medicament
}

// Replacement renders the canonical string written back into the document:
// the brand followed by the ingredient list in parentheses.
func (r *Resolution) Replacement() string {
	return r.Brand + " (" + strings.Join(r.Ingredients, ", ") + ")"
}
