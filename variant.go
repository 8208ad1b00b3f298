package farmanote

import "strings"

// variantSubstitutions are the whole-string character substitutions tried
// before positional deletions, in this fixed order. They cover the common
// Spanish orthographic confusions: y↔i, z↔s (seseo), v↔b, and silent h.
var variantSubstitutions = [][2]string{
	{"y", "i"},
	{"i", "y"},
	{"z", "s"},
	{"s", "z"},
	{"v", "b"},
	{"b", "v"},
	{"h", ""},
}

// Variants generates the ordered spelling variants tried when the literal
// search for query yields nothing: character substitutions first, then
// single-character deletions at every position, left to right. The list
// never repeats a string (compared lower-cased) and never includes the
// query itself. Callers try the variants in order and stop at the first
// one that produces results.
func Variants(query string) []string {
	seen := map[string]bool{strings.ToLower(query): true}
	var out []string

	add := func(v string) {
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, v)
	}

	for _, sub := range variantSubstitutions {
		add(replaceFold(query, sub[0], sub[1]))
	}

	runes := []rune(query)
	for i := range runes {
		add(string(runes[:i]) + string(runes[i+1:]))
	}

	return out
}

// replaceFold replaces every case-insensitive occurrence of the single
// character old with new.
func replaceFold(s, old, new string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.EqualFold(string(r), old) {
			b.WriteString(new)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
