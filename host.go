package farmanote

import (
	"context"
	"strings"
	"unicode"
)

// DocumentHost is the editing surface the resolution runs against: a host
// that exposes the current selection and lets it be replaced. The Word
// add-in binding and the CLI's stdin/stdout binding both satisfy it.
type DocumentHost interface {
	// SelectionText returns the currently selected text.
	SelectionText(ctx context.Context) (string, error)

	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(ctx context.Context, text string) error
}

// StatusSink receives user-facing progress and indications messages.
// Both methods are write-only and must never fail the pipeline.
type StatusSink interface {
	SetStatus(message string)

	// SetIndications displays the indications excerpt. Callers pass "—"
	// to clear it.
	SetIndications(message string)
}

// TrimSelection cleans a raw host selection for use as a query. Word
// selections often carry trailing non-breaking spaces; unicode.IsSpace
// covers U+00A0, so a single trim pass handles both.
func TrimSelection(text string) string {
	return strings.TrimFunc(text, unicode.IsSpace)
}
