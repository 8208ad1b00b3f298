package goquery

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sectionStrategy locates the indications span in rendered document text.
// Strategies are independent; ExtractSection tries them in order and the
// first success wins.
type sectionStrategy func(plain string) (string, bool)

var sectionStrategies = []sectionStrategy{
	technicalSheetSection,
	leafletSection,
	genericSection,
}

// ExtractSection locates the indications section of a rendered regulatory
// document: ficha técnica numbering first (4.1 up to 4.2/4.3/5.), then the
// prospecto's "para qué se utiliza" phrasing, then a bare "indicaciones"
// search. ok is false when no strategy matches.
func ExtractSection(plain string) (string, bool) {
	for _, strategy := range sectionStrategies {
		if section, ok := strategy(plain); ok {
			return section, true
		}
	}
	return "", false
}

var (
	// Digits may be separated from the dot by whitespace in rendered
	// fichas técnicas ("4. 1").
	sectionStartRe = regexp.MustCompile(`4\.\s*1`)
	sectionEndRe   = regexp.MustCompile(`4\.\s*2|4\.\s*3|5\.`)

	// numberedLineRe matches the next bare numbered-section heading, the
	// capture terminator for the phrase-based strategies.
	numberedLineRe = regexp.MustCompile(`\n\s*\d+\s*\.`)
)

// technicalSheetSection captures the "4.1" section of a ficha técnica up
// to the next 4.2, 4.3 or 5. marker. Within the span, anything before the
// first "indicaciones" is dropped. Without a closing marker the strategy
// fails so the next one can try.
func technicalSheetSection(plain string) (string, bool) {
	start := sectionStartRe.FindStringIndex(plain)
	if start == nil {
		return "", false
	}

	end := sectionEndRe.FindStringIndex(plain[start[1]:])
	if end == nil {
		return "", false
	}

	span := plain[start[0] : start[1]+end[0]]
	if idx := strings.Index(strings.ToLower(span), "indicaciones"); idx > -1 {
		span = span[idx:]
	}
	return stripSpaces(span), true
}

// leafletSection captures from the prospecto's "para qué se utiliza"
// heading (matched ignoring accents and case) to the next numbered
// section, or to the end of the document.
func leafletSection(plain string) (string, bool) {
	return phraseSection(plain, "para que se utiliza")
}

// genericSection is the last-resort capture from a bare "indicaciones".
func genericSection(plain string) (string, bool) {
	return phraseSection(plain, "indicaciones")
}

func phraseSection(plain, phrase string) (string, bool) {
	idx := foldIndex(plain, phrase)
	if idx < 0 {
		return "", false
	}

	rest := plain[idx:]
	if m := numberedLineRe.FindStringIndex(rest); m != nil {
		rest = rest[:m[0]]
	}
	return stripSpaces(rest), true
}

// accentStripper removes combining marks after canonical decomposition,
// turning "qué" into "que".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents strips diacritics from s.
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// foldIndex finds phrase in s ignoring case and diacritics and returns the
// byte offset of the match within the original string, or -1. The capture
// that follows slices the original text, so the fold must keep a
// rune-accurate mapping back into it.
func foldIndex(s, phrase string) int {
	want := []rune(strings.ToLower(RemoveAccents(phrase)))
	if len(want) == 0 {
		return -1
	}

	folded, offsets := foldRunes(s)
	for i := 0; i+len(want) <= len(folded); i++ {
		if runesEqual(folded[i:i+len(want)], want) {
			return offsets[i]
		}
	}
	return -1
}

// foldRunes lower-cases and de-accents s rune by rune, recording the byte
// offset each folded rune came from. Combining marks fold to nothing and
// are dropped.
func foldRunes(s string) ([]rune, []int) {
	folded := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s))
	for i, r := range s {
		stripped := RemoveAccents(string(r))
		if stripped == "" {
			continue
		}
		for _, fr := range stripped {
			folded = append(folded, unicode.ToLower(fr))
			offsets = append(offsets, i)
		}
	}
	return folded, offsets
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Truncate bounds text to max runes without cutting inside a word: over
// the limit, the text is cut at the last space at or before max-10 and an
// ellipsis is appended. When no space exists in that range the cut is a
// hard one just under the limit.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}

	cut := -1
	for i := max - 10; i >= 0; i-- {
		if r[i] == ' ' {
			cut = i
			break
		}
	}
	if cut <= 0 {
		cut = max - 1
	}

	return strings.TrimSpace(string(r[:cut])) + "…"
}
