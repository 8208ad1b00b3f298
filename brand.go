package farmanote

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// brandStopTokens are the pharmaceutical form, route and release
// descriptors that end the brand portion of an official product name.
// CIMA names are upper-case; both accented and unaccented spellings occur.
var brandStopTokens = map[string]struct{}{
	"COMPRIMIDOS": {}, "COMPRIMIDO": {}, "CAPSULAS": {}, "CÁPSULAS": {},
	"CAPSULA": {}, "CÁPSULA": {}, "EFG": {}, "TURBUHALER": {},
	"AEROSOL": {}, "INHALADOR": {}, "INHALACIÓN": {}, "INHALACION": {},
	"SOLUCIÓN": {}, "SOLUCION": {}, "SUSPENSIÓN": {}, "SUSPENSION": {},
	"JARABE": {}, "TABLETAS": {}, "TABLETA": {}, "TAB": {},
	"VIAL": {}, "VIALES": {}, "RETARD": {}, "SR": {}, "ER": {}, "XR": {}, "MR": {},
	"LIBERACIÓN": {}, "LIBERACION": {},
	"RECUBIERTOS": {}, "RECUBIERTO": {}, "GASTRORRESISTENTES": {},
	"DISPERSABLE": {}, "DISPERSABLES": {}, "COLIRIO": {}, "PARCHES": {}, "PARCHE": {},
	"SPRAY": {}, "CREMA": {}, "GOTAS": {}, "POLVO": {}, "SOBRES": {},
	"UNIDOSIS": {}, "SOLUBLE": {}, "ORAL": {}, "NASAL": {},
	"OFTÁLMICA": {}, "OFTALMICA": {},
}

var (
	// doseRatioRe matches dose strengths and ratios like "600", "2,5" or
	// "50/12,5".
	doseRatioRe = regexp.MustCompile(`^\d+([.,]\d+)?(/\d+([.,]\d+)?)?$`)

	// unitTokenRe matches unit tokens. "ΜG" is what both micro-sign and
	// Greek-mu spellings of "µg" upper-case to.
	unitTokenRe = regexp.MustCompile(`^(MG|MCG|ΜG|UG|G|ML|%|IU|UI)$`)
)

// DeriveBrand reconstructs a clean brand name from the registry's official
// product name by keeping the leading tokens up to the first dose figure,
// unit token or form/route descriptor. If the very first token already
// triggers a stop, that single token is kept. The result is title-cased.
func DeriveBrand(officialName string) string {
	raw := strings.TrimSpace(officialName)
	if raw == "" {
		return ""
	}

	tokens := strings.Fields(raw)
	var chosen []string
	for _, tok := range tokens {
		if isBrandStop(tok) {
			break
		}
		chosen = append(chosen, tok)
	}
	if len(chosen) == 0 {
		chosen = tokens[:1]
	}

	for i, tok := range chosen {
		chosen[i] = titleCaseWord(tok)
	}
	return strings.Join(chosen, " ")
}

// TitleCaseText renders free text with each whitespace-separated word
// title-cased. Used as the display fallback for the user's own selection
// when brand derivation yields nothing.
func TitleCaseText(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	words := strings.Fields(trimmed)
	for i, w := range words {
		words[i] = titleCaseWord(w)
	}
	return strings.Join(words, " ")
}

func isBrandStop(token string) bool {
	up := strings.ToUpper(token)
	if r, _ := utf8.DecodeRuneInString(up); unicode.IsDigit(r) {
		return true
	}
	if doseRatioRe.MatchString(up) {
		return true
	}
	if unitTokenRe.MatchString(up) {
		return true
	}
	_, ok := brandStopTokens[up]
	return ok
}

// titleCaseWord upper-cases the first rune and lower-cases the rest.
func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
