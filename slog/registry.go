// Package slog provides logging decorators for farmanote services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/msoler/farmanote"
)

// Ensure LoggingRegistry implements farmanote.Registry.
var _ farmanote.Registry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a Registry with debug logging of every search and
// detail call: the query, the result count and the duration.
type LoggingRegistry struct {
	next   farmanote.Registry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next farmanote.Registry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Search delegates to the wrapped registry and logs the outcome.
func (r *LoggingRegistry) Search(ctx context.Context, name string) ([]*farmanote.Medicament, error) {
	begin := time.Now()
	meds, err := r.next.Search(ctx, name)
	r.logger.Debug("registry search",
		"name", name,
		"results", len(meds),
		"duration", time.Since(begin),
		"error", errAttr(err),
	)
	return meds, err
}

// Detail delegates to the wrapped registry and logs the outcome.
func (r *LoggingRegistry) Detail(ctx context.Context, registryNumber string) (*farmanote.Medicament, error) {
	begin := time.Now()
	med, err := r.next.Detail(ctx, registryNumber)
	r.logger.Debug("registry detail",
		"nregistro", registryNumber,
		"found", med != nil,
		"duration", time.Since(begin),
		"error", errAttr(err),
	)
	return med, err
}

func errAttr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
