package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ochairo/sbomview/internal/domain-adapters/gateways"
	"github.com/ochairo/sbomview/internal/domain/services"
	"github.com/ochairo/sbomview/internal/external-adapters/cyclonedx"
	"github.com/ochairo/sbomview/internal/external-adapters/logging"
	"github.com/ochairo/sbomview/internal/external-adapters/spdx"
)

func runInspect(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	file := fs.String("file", "", "Path to the SBOM document")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sbomview inspect [options]

Interpret a local SBOM file and print the normalized view as YAML.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sbomview inspect --file bom.xml
  sbomview inspect --file sbom.spdx.json
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *file == "" {
		fmt.Fprintf(os.Stderr, "Error: --file is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	svc := services.NewInterpreterService(
		gateways.NewCycloneDXInterpreter(),
		cyclonedx.NewJSONInterpreter(),
		spdx.NewParserGateway(),
		"",
		logging.NewLogrusLogger("warn"),
	)

	report, err := svc.Interpret(ctx, filepath.Base(*file), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
