package main

import (
	"fmt"

	"github.com/msoler/farmanote"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	name := farmanote.TrimSelection(c.Name)
	if name == "" {
		return farmanote.Errorf(farmanote.EINVALID, "name required")
	}

	meds, err := deps.Registry.Search(deps.Ctx, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmanote.ErrorMessage(err))
		return err
	}

	if len(meds) == 0 {
		fmt.Fprintln(deps.Stdout, "No encontrado en CIMA.")
		return nil
	}

	for _, m := range meds {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", m.RegistryNumber, m.Name)
	}

	return nil
}
