package mock

import (
	"context"

	"github.com/msoler/farmanote"
)

var _ farmanote.Registry = (*Registry)(nil)

// Registry is a mock implementation of farmanote.Registry.
type Registry struct {
	SearchFn func(ctx context.Context, name string) ([]*farmanote.Medicament, error)
	DetailFn func(ctx context.Context, registryNumber string) (*farmanote.Medicament, error)
}

func (r *Registry) Search(ctx context.Context, name string) ([]*farmanote.Medicament, error) {
	return r.SearchFn(ctx, name)
}

func (r *Registry) Detail(ctx context.Context, registryNumber string) (*farmanote.Medicament, error) {
	return r.DetailFn(ctx, registryNumber)
}
