// Package resolve orchestrates the brand-resolution pipeline: registry
// search with orthographic variant retries, detail lookup, and derivation
// of the canonical brand plus normalized ingredient list.
package resolve

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/msoler/farmanote"
)

// Resolver runs one resolution per call. It holds no state between
// invocations; every record it touches is created and discarded within a
// single Resolve.
type Resolver struct {
	// Registry is the medicinal-product registry to resolve against.
	Registry farmanote.Registry

	// Logger receives per-invocation debug and result logs.
	// Nil discards them.
	Logger *slog.Logger
}

// Resolve resolves a user-supplied product name to its registry-corrected
// brand and normalized active ingredients.
//
// The literal query is searched first; if it matches nothing, spelling
// variants are tried in order until one does. The first candidate's detail
// record is preferred over the search result whenever it can be fetched;
// a failed or empty detail fetch degrades to the candidate. Returns
// EINVALID for an empty query, ENOTFOUND when no variant matches, and
// ENOINGREDIENTS when the chosen record lists no active ingredients.
func (r *Resolver) Resolve(ctx context.Context, query string) (*farmanote.Resolution, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, farmanote.Errorf(farmanote.EINVALID, "query required")
	}

	logger := r.logger().With("invocation", uuid.NewString(), "query", query)

	candidates, variant, err := r.search(ctx, query, logger)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, farmanote.Errorf(farmanote.ENOTFOUND, "no medicament matches %q", query)
	}
	candidate := candidates[0]

	med := r.detail(ctx, candidate, logger)

	if len(med.Ingredients) == 0 {
		return nil, farmanote.Errorf(farmanote.ENOINGREDIENTS, "medicament %q lists no active ingredients", med.Name)
	}

	brand := farmanote.DeriveBrand(med.Name)
	if brand == "" {
		brand = farmanote.TitleCaseText(query)
	}

	res := &farmanote.Resolution{
		Query:       query,
		Brand:       brand,
		Ingredients: farmanote.NormalizeIngredients(med.Ingredients),
		Variant:     variant,
		Medicament:  med,
	}

	logger.Info("resolved",
		"brand", res.Brand,
		"nregistro", med.RegistryNumber,
		"ingredients", len(res.Ingredients),
		"variant", variant,
	)
	return res, nil
}

// search runs the literal query and, only when it yields nothing, the
// ordered spelling variants. The first non-empty result short-circuits;
// there is no ranking across variants. variant is "" when the literal
// query matched.
func (r *Resolver) search(ctx context.Context, query string, logger *slog.Logger) ([]*farmanote.Medicament, string, error) {
	meds, err := r.Registry.Search(ctx, query)
	if err != nil {
		return nil, "", err
	}
	if len(meds) > 0 {
		return meds, "", nil
	}

	for _, v := range farmanote.Variants(query) {
		meds, err = r.Registry.Search(ctx, v)
		if err != nil {
			return nil, "", err
		}
		if len(meds) > 0 {
			logger.Debug("variant matched", "variant", v)
			return meds, v, nil
		}
	}

	return nil, "", nil
}

// detail fetches the candidate's full record, which carries the complete
// ingredient and document metadata. Any failure degrades to the search
// candidate; a candidate without a resolvable identifier skips the fetch
// entirely.
func (r *Resolver) detail(ctx context.Context, candidate *farmanote.Medicament, logger *slog.Logger) *farmanote.Medicament {
	if candidate.RegistryNumber == "" {
		return candidate
	}

	med, err := r.Registry.Detail(ctx, candidate.RegistryNumber)
	if err != nil || med == nil {
		logger.Debug("detail fetch failed, using search candidate",
			"nregistro", candidate.RegistryNumber,
			"error", err,
		)
		return candidate
	}
	return med
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
