package farmanote

import (
	"regexp"
	"strings"
)

// ingredientFixes is the closed correction table for active-ingredient
// names: Spanish diacritics the registry frequently drops, restored in a
// fixed order. "acido" in trailing position is moved to the front as the
// pharmacopoeia writes it. Misspellings outside the table pass through
// unchanged; this is not a spell-checker.
var ingredientFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^(.+)\s+acido$`), "ácido $1"},
	{regexp.MustCompile(`\bacido\b`), "ácido"},
	{regexp.MustCompile(`\bsodico\b`), "sódico"},
	{regexp.MustCompile(`\bpotasico\b`), "potásico"},
	{regexp.MustCompile(`\bclorhidrico\b`), "clorhídrico"},
	{regexp.MustCompile(`\bhidroxido\b`), "hidróxido"},
	{regexp.MustCompile(`\bacetilsalicilico\b`), "acetilsalicílico"},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeIngredient canonicalizes one active-ingredient name: lower-case,
// collapsed whitespace, then the diacritic correction table. The function
// is idempotent.
func NormalizeIngredient(name string) string {
	out := strings.ToLower(strings.TrimSpace(name))
	out = whitespaceRe.ReplaceAllString(out, " ")
	for _, f := range ingredientFixes {
		out = f.re.ReplaceAllString(out, f.repl)
	}
	return out
}

// NormalizeIngredients normalizes every name, preserving order.
func NormalizeIngredients(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = NormalizeIngredient(n)
	}
	return out
}

// FormatIngredients renders normalized ingredient names for display,
// joined with ", " in their original order.
func FormatIngredients(names []string) string {
	return strings.Join(NormalizeIngredients(names), ", ")
}
