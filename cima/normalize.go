package cima

import (
	"encoding/json"
	"strings"

	"github.com/msoler/farmanote"
)

// toRecords normalizes the registry's response shapes into an ordered
// record list. Rules, first match wins: a bare array is returned as-is;
// an object with a "resultados" (paginated), "lista" or "datos" array
// yields that array; an object with a "nombre" field is wrapped as a
// single record; anything else is empty. Unrecognized shapes are not an
// error: an empty result is the "nothing found" signal.
func toRecords(data []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		// Scalars and other valid-but-unrecognized values are "nothing
		// found", not a decode failure.
		if json.Valid(data) {
			return nil, nil
		}
		return nil, err
	}

	for _, key := range []string{"resultados", "lista", "datos"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var wrapped []json.RawMessage
		if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped != nil {
			return wrapped, nil
		}
	}

	if _, ok := obj["nombre"]; ok {
		return []json.RawMessage{json.RawMessage(data)}, nil
	}

	return nil, nil
}

// rawRecord is the superset of fields a CIMA record may carry. Identifier
// and ingredient fields vary across endpoints, so the ambiguous ones are
// kept raw and resolved by preference order below.
type rawRecord struct {
	Nregistro         json.RawMessage `json:"nregistro"`
	NregistroID       json.RawMessage `json:"nregistroId"`
	ID                json.RawMessage `json:"id"`
	Nombre            string          `json:"nombre"`
	PrincipiosActivos []rawIngredient `json:"principiosActivos"`
	Pactivos          json.RawMessage `json:"pactivos"`
	Docs              []rawDocument   `json:"docs"`
}

type rawIngredient struct {
	Nombre          string `json:"nombre"`
	PrincipioActivo string `json:"principioActivo"`
	Principio       string `json:"principio"`
}

type rawDocument struct {
	Tipo    int    `json:"tipo"`
	URLHTML string `json:"urlHtml"`
}

// decodeMedicament maps one raw registry record onto the domain type.
func decodeMedicament(data json.RawMessage) (*farmanote.Medicament, error) {
	var rec rawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	med := &farmanote.Medicament{
		RegistryNumber: registryNumber(rec),
		Name:           strings.TrimSpace(rec.Nombre),
		Ingredients:    extractIngredients(rec),
	}
	for _, d := range rec.Docs {
		med.Documents = append(med.Documents, farmanote.DocumentRef{
			Type:    farmanote.DocumentType(d.Tipo),
			HTMLURL: d.URLHTML,
		})
	}
	return med, nil
}

// registryNumber resolves the record identifier. The key preference
// (nregistro, then nregistroId, then id) follows the order CIMA's own
// responses are observed to use; keep it exactly.
func registryNumber(rec rawRecord) string {
	for _, raw := range []json.RawMessage{rec.Nregistro, rec.NregistroID, rec.ID} {
		if s := scalarString(raw); s != "" {
			return s
		}
	}
	return ""
}

// extractIngredients resolves the record's inconsistent ingredient layout.
// Field order: the structured principiosActivos list (entry name resolved
// as nombre, then principioActivo, then principio, empty results dropped);
// else a non-empty scalar pactivos summary; else a pactivos object with a
// nombre field. The first non-empty source wins; sources never merge.
func extractIngredients(rec rawRecord) []string {
	if len(rec.PrincipiosActivos) > 0 {
		var names []string
		for _, p := range rec.PrincipiosActivos {
			name := strings.TrimSpace(firstNonEmpty(p.Nombre, p.PrincipioActivo, p.Principio))
			if name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}

	if len(rec.Pactivos) > 0 {
		var summary string
		if err := json.Unmarshal(rec.Pactivos, &summary); err == nil {
			if summary = strings.TrimSpace(summary); summary != "" {
				return []string{summary}
			}
			return nil
		}

		var obj struct {
			Nombre json.RawMessage `json:"nombre"`
		}
		if err := json.Unmarshal(rec.Pactivos, &obj); err == nil {
			if name := scalarString(obj.Nombre); name != "" {
				return []string{name}
			}
		}
	}

	return nil
}

// scalarString renders a JSON scalar as text: strings are trimmed, numbers
// keep their literal form. Anything else yields "".
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
