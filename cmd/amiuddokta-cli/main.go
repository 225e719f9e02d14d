// Package main is the entry point for the amiuddokta-cli application.
// It registers the database and media maintenance commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/arifmia1129/amiuddokta-server-sub002/cmd/amiuddokta-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "amiuddokta-cli",
		Short: "Administration tool for the amiuddokta backend",
		Long: `amiuddokta-cli performs maintenance tasks against the amiuddokta database
and upload pipeline: running schema migrations, bootstrapping the first
administrator account and converting images to WebP.

Configuration is read from the file given with --config (default
configs/rest-app.yaml). AMIUDDOKTA_* environment variables override it.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "configs/rest-app.yaml", "Path to the configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitMediaCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize media commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
