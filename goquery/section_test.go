package goquery_test

import (
	"strings"
	"testing"

	"github.com/msoler/farmanote/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	t.Parallel()

	t.Run("ficha técnica numbering wins", func(t *testing.T) {
		t.Parallel()

		plain := "4. DATOS CLÍNICOS\n" +
			"4.1 Indicaciones terapéuticas\n" +
			"Tratamiento sintomático del dolor leve o moderado.\n" +
			"4.2 Posología y forma de administración\n" +
			"Adultos: una dosis."

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)

		assert.True(t, strings.HasPrefix(section, "Indicaciones terapéuticas"))
		assert.Contains(t, section, "dolor leve o moderado")
		assert.NotContains(t, section, "Posología")
	})

	t.Run("numbering tolerates internal whitespace", func(t *testing.T) {
		t.Parallel()

		plain := "4. 1 Indicaciones\nAlivio del dolor.\n4. 2 Posología"

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)
		assert.Contains(t, section, "Alivio del dolor")
		assert.NotContains(t, section, "Posología")
	})

	t.Run("capture keeps text when the word indicaciones is absent", func(t *testing.T) {
		t.Parallel()

		plain := "4.1 Usos\nAlivio del dolor.\n5. PROPIEDADES"

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(section, "4.1 Usos"))
	})

	t.Run("without a closing marker the numbering strategy yields to the next", func(t *testing.T) {
		t.Parallel()

		plain := "4.1 Indicaciones terapéuticas\nAlivio del dolor sin más secciones."

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)

		// The generic "indicaciones" fallback captured to end of text.
		assert.True(t, strings.HasPrefix(section, "Indicaciones terapéuticas"))
		assert.Contains(t, section, "sin más secciones")
	})

	t.Run("prospecto phrasing is matched ignoring accents and case", func(t *testing.T) {
		t.Parallel()

		plain := "Prospecto: información para el usuario\n" +
			"1. Qué es Adiro y para qué se utiliza\n" +
			"Adiro pertenece al grupo de los antiagregantes.\n" +
			"2. Qué necesita saber antes de empezar a tomar Adiro\n" +
			"No tome Adiro si es alérgico."

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)

		assert.True(t, strings.HasPrefix(section, "para qué se utiliza"))
		assert.Contains(t, section, "antiagregantes")
		assert.NotContains(t, section, "No tome Adiro")
	})

	t.Run("prospecto capture runs to end of text without a next section", func(t *testing.T) {
		t.Parallel()

		plain := "PARA QUÉ SE UTILIZA\nAlivio sintomático del dolor."

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)
		assert.Contains(t, section, "Alivio sintomático")
	})

	t.Run("generic indicaciones fallback", func(t *testing.T) {
		t.Parallel()

		plain := "INDICACIONES\nDolor de cabeza.\n2. CONTRAINDICACIONES\nNinguna."

		section, ok := goquery.ExtractSection(plain)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(section, "INDICACIONES"))
		assert.NotContains(t, section, "Ninguna")
	})

	t.Run("no strategy matches", func(t *testing.T) {
		t.Parallel()

		_, ok := goquery.ExtractSection("Documento sin secciones reconocibles.")
		assert.False(t, ok)
	})
}

func TestRemoveAccents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "para que se utiliza", goquery.RemoveAccents("para qué se utiliza"))
	assert.Equal(t, "acido", goquery.RemoveAccents("ácido"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("short text passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "corto", goquery.Truncate("corto", 1200))
	})

	t.Run("long text cuts at a word boundary with an ellipsis", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("palabra ", 200) // 1600 runes
		got := goquery.Truncate(long, 1200)

		r := []rune(got)
		assert.LessOrEqual(t, len(r), 1200)
		assert.True(t, strings.HasSuffix(got, "…"))

		// Never ends mid-word: the prefix before the ellipsis is whole
		// words from the original.
		prefix := strings.TrimSuffix(got, "…")
		assert.True(t, strings.HasPrefix(long, prefix))
		assert.True(t, strings.HasSuffix(prefix, "palabra"))
	})

	t.Run("spaceless text hard-cuts under the limit", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 1500)
		got := goquery.Truncate(long, 1200)

		assert.LessOrEqual(t, len([]rune(got)), 1200)
		assert.True(t, strings.HasSuffix(got, "…"))
	})
}
