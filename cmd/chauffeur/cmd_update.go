// Package main provides the chauffeur CLI for provisioning browser drivers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/chauffeur/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/chauffeur/internal/domain-orchestrators"
	"github.com/ochairo/chauffeur/internal/domain/interfaces"
	"github.com/ochairo/chauffeur/internal/external-adapters/yaml"
)

func runUpdate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	var (
		prefix      = fs.String("prefix", "", "Browser version prefix to match (e.g. 128)")
		configPath  = fs.String("config", "chauffeur.yml", "Path to config file")
		manifestURL = fs.String("manifest-url", "", "Override the version manifest URL")
		outputDir   = fs.String("output-dir", "", "Directory for archives and extracted drivers")
		showSummary = fs.Bool("summary", false, "Print a run summary to stderr")
		quiet       = fs.Bool("quiet", false, "Quiet mode - only the driver path on stdout")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chauffeur update [options]

Download and extract the first driver whose version matches the prefix.
On success the executable path is printed on stdout; an empty result
exits non-zero.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  chauffeur update
  chauffeur update --prefix 127 --output-dir .drivers
  chauffeur update --quiet --prefix 128.0
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := yaml.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config, config overrides defaults
	if *prefix == "" {
		*prefix = cfg.VersionPrefix
	}
	if *manifestURL == "" {
		*manifestURL = cfg.ManifestURL
	}
	if *outputDir == "" {
		*outputDir = cfg.OutputDir
	}

	logger := &interfaces.StderrLogger{Quiet: *quiet}
	orch := orchestrators.NewProvisionOrchestrator(
		gateways.NewManifestFetcher(),
		gateways.NewDownloader(),
		gateways.NewDriverFinder(),
		logger,
		orchestrators.ProvisionOrchestratorConfig{
			ManifestURL: *manifestURL,
			DriverName:  cfg.DriverName,
			OutputDir:   *outputDir,
		},
	)

	result, err := orch.Provision(ctx, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showSummary {
		fmt.Fprintln(os.Stderr, result.Summary())
	}

	// The contract is the path on stdout; empty means failure
	fmt.Println(result.Path())
	if result.Path() == "" {
		os.Exit(1)
	}
}
