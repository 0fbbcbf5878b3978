package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "serve":
		runServe(ctx, os.Args[2:])
	case "inspect":
		runInspect(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sbomview - SBOM document inspector

Usage:
  sbomview <command> [options]

Commands:
  serve    Start the upload web UI
  inspect  Interpret a local SBOM file and print the normalized view

Use "sbomview <command> --help" for more information about a command.`)
}
