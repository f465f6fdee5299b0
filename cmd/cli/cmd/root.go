// Package cmd provides the CLI commands for archcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archcost/internal/config"
	"archcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archcost",
	Short: "Estimate AWS costs for architecture descriptions",
	Long: `archcost prices AWS architecture descriptions against the live
AWS Pricing API and produces hourly, monthly and yearly cost reports.

Architecture descriptions are JSON documents with a "nodes" list, typically
produced by the built-in design assistant.

Examples:
  archcost estimate -f architecture.json
  archcost estimate -f architecture.json -o report.json --region us-east-1
  archcost design "e-commerce site with 10k daily users"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.archcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("archcost version 0.1.0")
	},
}
