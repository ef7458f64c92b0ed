package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/chauffeur/internal/domain-adapters/gateways"
	"github.com/ochairo/chauffeur/internal/external-adapters/yaml"
)

func runClean(_ context.Context, args []string) {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	var (
		configPath = fs.String("config", "chauffeur.yml", "Path to config file")
		outputDir  = fs.String("output-dir", "", "Directory holding provisioned drivers")
		keep       = fs.String("keep", "", "Exact version to keep (e.g. 128.0.6613.137)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chauffeur clean [options]

Remove provisioned driver directories and stray archives.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  chauffeur clean
  chauffeur clean --keep 128.0.6613.137
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
	if *outputDir == "" {
		*outputDir = cfg.OutputDir
	}

	finder := gateways.NewDriverFinder()
	removed, err := finder.CleanProvisioned(*outputDir, cfg.DriverName, *keep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning drivers: %v\n", err)
		os.Exit(1)
	}

	if len(removed) == 0 {
		fmt.Println("Nothing to clean")
		return
	}
	for _, path := range removed {
		fmt.Printf("Removed %s\n", path)
	}
}
