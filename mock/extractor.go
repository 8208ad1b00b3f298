package mock

import (
	"context"

	"github.com/msoler/farmanote"
)

var _ farmanote.IndicationsExtractor = (*IndicationsExtractor)(nil)

// IndicationsExtractor is a mock implementation of
// farmanote.IndicationsExtractor.
type IndicationsExtractor struct {
	ExtractFn func(ctx context.Context, med *farmanote.Medicament) (string, error)
}

func (e *IndicationsExtractor) Extract(ctx context.Context, med *farmanote.Medicament) (string, error) {
	return e.ExtractFn(ctx, med)
}
