package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ochairo/sbomview/internal/domain-adapters/gateways"
	"github.com/ochairo/sbomview/internal/domain/interfaces"
	"github.com/ochairo/sbomview/internal/domain/services"
	"github.com/ochairo/sbomview/internal/external-adapters/cyclonedx"
	"github.com/ochairo/sbomview/internal/external-adapters/logging"
	"github.com/ochairo/sbomview/internal/external-adapters/spdx"
	"github.com/ochairo/sbomview/internal/external-adapters/web"
	yamlcfg "github.com/ochairo/sbomview/internal/external-adapters/yaml"
)

func runServe(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "Path to YAML config file")
		addr       = fs.String("addr", "", "Listen address (overrides config)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sbomview serve [options]

Start the SBOM upload web UI.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sbomview serve
  sbomview serve --addr :9090
  sbomview serve --config /etc/sbomview/config.yaml
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg := yamlcfg.DefaultConfig()
	if *configPath != "" {
		parsed, err := yamlcfg.NewConfigParser().ParseFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = parsed
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	logger := logging.NewLogrusLogger(cfg.LogLevel)

	svc := services.NewInterpreterService(
		gateways.NewCycloneDXInterpreter(),
		cyclonedx.NewJSONInterpreter(),
		spdx.NewParserGateway(),
		cfg.StagingDir,
		logger,
	)

	server, err := web.NewServer(cfg, svc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving", interfaces.F("addr", cfg.ListenAddr))
	if err := server.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", interfaces.F("error", err))
		os.Exit(1)
	}
}
