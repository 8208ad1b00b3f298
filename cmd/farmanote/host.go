package main

import (
	"context"
	"fmt"
	"io"

	"github.com/msoler/farmanote"
)

var (
	_ farmanote.DocumentHost = (*stdioHost)(nil)
	_ farmanote.StatusSink   = (*writerStatus)(nil)
)

// stdioHost binds the document-host contract to standard streams: the
// "selection" is whatever arrives on stdin and replacing it prints the
// replacement to stdout. It lets the same pipeline drive the CLI and the
// Word add-in unchanged.
type stdioHost struct {
	in  io.Reader
	out io.Writer
}

func (h *stdioHost) SelectionText(ctx context.Context) (string, error) {
	b, err := io.ReadAll(h.in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *stdioHost) ReplaceSelection(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(h.out, text)
	return err
}

// writerStatus writes status and indications messages as plain lines.
type writerStatus struct {
	out io.Writer
}

func (s *writerStatus) SetStatus(message string) {
	fmt.Fprintln(s.out, message)
}

func (s *writerStatus) SetIndications(message string) {
	if message == "" {
		message = "—"
	}
	fmt.Fprintln(s.out, message)
}
