package main

import (
	"context"
	"io"

	"github.com/msoler/farmanote"
	"github.com/msoler/farmanote/resolve"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Registry    farmanote.Registry
	Resolver    *resolve.Resolver
	Indications farmanote.IndicationsExtractor
	Host        farmanote.DocumentHost
	Status      farmanote.StatusSink
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Resolve     ResolveCmd     `cmd:"" help:"Resolve a brand name and print its corrected form with active ingredients"`
	Search      SearchCmd      `cmd:"" help:"List registry candidates for a name"`
	Indications IndicationsCmd `cmd:"" help:"Print the indications excerpt for a registry number"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Name          string `arg:"" optional:"" help:"Brand name as typed; read from stdin when omitted"`
	NoIndications bool   `help:"Skip the indications lookup"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name string `arg:"" help:"Product name to search"`
}

// IndicationsCmd is the "indications" subcommand.
type IndicationsCmd struct {
	Nregistro string `arg:"" help:"Registry number of the medicament"`
}
