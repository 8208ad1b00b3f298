package mock

import (
	"context"

	"github.com/msoler/farmanote"
)

var (
	_ farmanote.DocumentHost = (*DocumentHost)(nil)
	_ farmanote.StatusSink   = (*StatusSink)(nil)
)

// DocumentHost is a mock implementation of farmanote.DocumentHost.
type DocumentHost struct {
	SelectionTextFn    func(ctx context.Context) (string, error)
	ReplaceSelectionFn func(ctx context.Context, text string) error
}

func (h *DocumentHost) SelectionText(ctx context.Context) (string, error) {
	return h.SelectionTextFn(ctx)
}

func (h *DocumentHost) ReplaceSelection(ctx context.Context, text string) error {
	return h.ReplaceSelectionFn(ctx, text)
}

// StatusSink is a mock implementation of farmanote.StatusSink.
// Nil funcs make the corresponding call a no-op so tests only wire what
// they assert on.
type StatusSink struct {
	SetStatusFn      func(message string)
	SetIndicationsFn func(message string)
}

func (s *StatusSink) SetStatus(message string) {
	if s.SetStatusFn != nil {
		s.SetStatusFn(message)
	}
}

func (s *StatusSink) SetIndications(message string) {
	if s.SetIndicationsFn != nil {
		s.SetIndicationsFn(message)
	}
}
