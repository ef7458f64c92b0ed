package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/chauffeur/internal/domain-adapters/gateways"
	"github.com/ochairo/chauffeur/internal/domain/services"
	"github.com/ochairo/chauffeur/internal/external-adapters/yaml"
)

func runResolve(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	var (
		prefix      = fs.String("prefix", "", "Browser version prefix to match (e.g. 128)")
		configPath  = fs.String("config", "chauffeur.yml", "Path to config file")
		manifestURL = fs.String("manifest-url", "", "Override the version manifest URL")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chauffeur resolve [options]

Look up the driver download for a version prefix without downloading it.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  chauffeur resolve
  chauffeur resolve --prefix 127.0
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
	if *prefix == "" {
		*prefix = cfg.VersionPrefix
	}
	if *manifestURL == "" {
		*manifestURL = cfg.ManifestURL
	}

	tag, err := services.ResolvePlatform()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Platform: %s\n", services.HostDescription(ctx, tag))

	mf := gateways.NewManifestFetcher()
	resolved, err := mf.FetchAndResolve(ctx, *manifestURL, cfg.DriverName, *prefix, tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving driver: %v\n", err)
		os.Exit(1)
	}
	if resolved == nil {
		fmt.Fprintf(os.Stderr, "No %s found for prefix %s on %s\n", cfg.DriverName, *prefix, tag)
		os.Exit(1)
	}

	fmt.Printf("Version: %s\n", resolved.Version)
	fmt.Printf("URL: %s\n", resolved.URL)
}
