package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/chauffeur/internal/domain-adapters/gateways"
	"github.com/ochairo/chauffeur/internal/external-adapters/yaml"
)

func runList(_ context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		configPath = fs.String("config", "chauffeur.yml", "Path to config file")
		outputDir  = fs.String("output-dir", "", "Directory holding provisioned drivers")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chauffeur list [options]

List drivers already provisioned in the output directory.

Options:
`)
		fs.PrintDefaults()
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
	drivers, err := finder.ListProvisioned(*outputDir, cfg.DriverName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing drivers: %v\n", err)
		os.Exit(1)
	}

	if len(drivers) == 0 {
		fmt.Printf("No provisioned %s found in %s\n", cfg.DriverName, *outputDir)
		return
	}

	fmt.Printf("Provisioned drivers (%d total):\n\n", len(drivers))
	for _, d := range drivers {
		fmt.Printf("  %-20s %s\n", d.Version, d.Dir)
		if d.Path != "" {
			fmt.Printf("  %-20s Executable: %s\n", "", d.Path)
		} else {
			fmt.Printf("  %-20s Executable: missing (stale directory)\n", "")
		}
		fmt.Println()
	}
}
