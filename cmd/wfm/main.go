package main

import (
	"fmt"
	"os"

	"workflow-manager/internal/auth"
	"workflow-manager/internal/cli"
	"workflow-manager/internal/config"
)

func main() {
	// Load configuration: defaults, then environment, then flags (applied
	// by the root command before any subcommand runs)
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The authorizer is the extension point for a real access-control
	// collaborator; the default allows everything
	root := cli.NewRootCommand(cfg, auth.NewAllowAll())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
