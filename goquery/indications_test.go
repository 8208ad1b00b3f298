package goquery_test

import (
	"context"
	"strings"
	"testing"

	"github.com/msoler/farmanote"
	"github.com/msoler/farmanote/goquery"
	"github.com/msoler/farmanote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fichaTecnicaHTML = `<html><body>
<h2>4. DATOS CLÍNICOS</h2>
<h3>4.1 Indicaciones terapéuticas</h3>
<p>Tratamiento sintomático del dolor leve o moderado.</p>
<h3>4.2 Posología y forma de administración</h3>
<p>Adultos: 500 mg cada 8 horas.</p>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts from the ficha técnica", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return fichaTecnicaHTML, nil
			},
		}
		extractor := goquery.NewExtractor(fetcher)

		med := &farmanote.Medicament{
			Name: "PARACETAMOL 500 MG COMPRIMIDOS",
			Documents: []farmanote.DocumentRef{
				{Type: farmanote.DocProspecto, HTMLURL: "https://cima.aemps.es/p.html"},
				{Type: farmanote.DocFichaTecnica, HTMLURL: "https://cima.aemps.es/ft.html"},
			},
		}

		text, err := extractor.Extract(context.Background(), med)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://cima.aemps.es/ft.html"}, fetched)
		assert.True(t, strings.HasPrefix(text, "Indicaciones terapéuticas"))
		assert.Contains(t, text, "dolor leve o moderado")
		assert.NotContains(t, text, "Posología")
	})

	t.Run("no usable document means no fetch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatalf("unexpected fetch of %s", url)
				return "", nil
			},
		}
		extractor := goquery.NewExtractor(fetcher)

		med := &farmanote.Medicament{Documents: []farmanote.DocumentRef{
			{Type: farmanote.DocFichaTecnica}, // no HTML URL
		}}

		_, err := extractor.Extract(context.Background(), med)
		require.Error(t, err)
		assert.Equal(t, farmanote.ENOTFOUND, farmanote.ErrorCode(err))
	})

	t.Run("fetch failure degrades to an error, not a panic", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", assert.AnError
			},
		}
		extractor := goquery.NewExtractor(fetcher)

		med := &farmanote.Medicament{Documents: []farmanote.DocumentRef{
			{Type: farmanote.DocFichaTecnica, HTMLURL: "https://cima.aemps.es/ft.html"},
		}}

		_, err := extractor.Extract(context.Background(), med)
		require.Error(t, err)
		assert.Equal(t, farmanote.EUNAVAILABLE, farmanote.ErrorCode(err))
	})

	t.Run("document without an indications section", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><p>Documento vacío.</p></body></html>", nil
			},
		}
		extractor := goquery.NewExtractor(fetcher)

		med := &farmanote.Medicament{Documents: []farmanote.DocumentRef{
			{Type: farmanote.DocProspecto, HTMLURL: "https://cima.aemps.es/p.html"},
		}}

		_, err := extractor.Extract(context.Background(), med)
		require.Error(t, err)
		assert.Equal(t, farmanote.ENOTFOUND, farmanote.ErrorCode(err))
	})

	t.Run("long sections are truncated", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("tratamiento del dolor ", 100) // 2200 runes
		html := "<html><body><p>4.1 Indicaciones terapéuticas</p><p>" + long +
			"</p><p>4.2 Posología</p></body></html>"
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return html, nil
			},
		}
		extractor := goquery.NewExtractor(fetcher)

		med := &farmanote.Medicament{Documents: []farmanote.DocumentRef{
			{Type: farmanote.DocFichaTecnica, HTMLURL: "https://cima.aemps.es/ft.html"},
		}}

		text, err := extractor.Extract(context.Background(), med)
		require.NoError(t, err)

		assert.LessOrEqual(t, len([]rune(text)), goquery.MaxIndicationsLen)
		assert.True(t, strings.HasSuffix(text, "…"))
	})
}
