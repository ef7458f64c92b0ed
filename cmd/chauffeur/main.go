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
	case "update":
		runUpdate(ctx, os.Args[2:])
	case "resolve":
		runResolve(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "clean":
		runClean(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`chauffeur - Version-matched browser driver provisioner

Usage:
  chauffeur <command> [options]

Commands:
  update   Download and extract a driver matching a version prefix
  resolve  Look up the download URL for a version prefix (no download)
  list     List drivers already provisioned in the output directory
  clean    Remove provisioned driver directories and stray archives

Use "chauffeur <command> --help" for more information about a command.`)
}
