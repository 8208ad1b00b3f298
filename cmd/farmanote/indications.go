package main

import (
	"fmt"

	"github.com/msoler/farmanote"
)

// Run executes the indications command.
func (c *IndicationsCmd) Run(deps *Dependencies) error {
	med, err := deps.Registry.Detail(deps.Ctx, c.Nregistro)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmanote.ErrorMessage(err))
		return err
	}

	text, err := deps.Indications.Extract(deps.Ctx, med)
	if err != nil {
		fmt.Fprintln(deps.Stdout, indicationsUnavailable)
		return nil
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
