package main

import (
	"fmt"

	"github.com/msoler/farmanote"
)

// indicationsUnavailable is shown when the best-effort indications path
// yields nothing; it never fails the resolution.
const indicationsUnavailable = "No se pudieron extraer las indicaciones de la Ficha Técnica/Prospecto."

// Run executes the resolve command: the original add-in's single-button
// flow. The replacement text is written through the document host first;
// the indications lookup runs after and only feeds the status panel.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	deps.Status.SetStatus("Buscando...")
	deps.Status.SetIndications("—")

	selection := c.Name
	if selection == "" {
		text, err := deps.Host.SelectionText(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		selection = text
	}

	selection = farmanote.TrimSelection(selection)
	if selection == "" {
		deps.Status.SetStatus("Selecciona un nombre comercial.")
		return farmanote.Errorf(farmanote.EINVALID, "empty selection")
	}

	res, err := deps.Resolver.Resolve(deps.Ctx, selection)
	if err != nil {
		switch farmanote.ErrorCode(err) {
		case farmanote.ENOTFOUND:
			deps.Status.SetStatus("No encontrado en CIMA.")
		case farmanote.ENOINGREDIENTS:
			deps.Status.SetStatus("Sin principios activos en la respuesta.")
		default:
			deps.Status.SetStatus("Error consultando CIMA. Revisa tu conexión.")
		}
		return err
	}

	if err := deps.Host.ReplaceSelection(deps.Ctx, res.Replacement()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	deps.Status.SetStatus("Listo.")

	if c.NoIndications {
		return nil
	}

	deps.Status.SetStatus("Buscando indicaciones…")
	indications, err := deps.Indications.Extract(deps.Ctx, res.Medicament)
	if err != nil {
		// Best-effort: indications never abort the resolution.
		deps.Status.SetIndications(indicationsUnavailable)
	} else {
		deps.Status.SetIndications(indications)
	}
	deps.Status.SetStatus("Listo.")

	return nil
}
