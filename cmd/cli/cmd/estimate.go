// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archcost/clouds/aws"
	"archcost/core/engine"
	"archcost/core/output"
	"archcost/core/types"
	"archcost/internal/config"
	"archcost/internal/logging"
)

var (
	archFile     string
	outputFile   string
	outputFormat string
	region       string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate costs for an architecture description",
	Long: `Price every node of an architecture description and produce an
aggregated cost report.

Examples:
  archcost estimate -f architecture.json
  archcost estimate -f architecture.json -o report.json
  archcost estimate -f architecture.json --region us-east-1 --format cli`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&archFile, "file", "f", "", "architecture JSON file (required)")
	estimateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the JSON report to a file")
	estimateCmd.Flags().StringVar(&outputFormat, "format", "cli", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&region, "region", "r", "", "default AWS region for nodes without one")
	estimateCmd.MarkFlagRequired("file")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	defaultRegion := cfg.AWS.DefaultRegion
	if region != "" {
		defaultRegion = region
	}

	data, err := os.ReadFile(archFile)
	if err != nil {
		return fmt.Errorf("reading architecture file: %w", err)
	}

	arch, err := types.ParseArchitecture(data)
	if err != nil {
		return err
	}

	logging.Info("Starting cost estimation")
	fmt.Printf("Estimating costs for %d nodes...\n\n", len(arch.Nodes))

	catalog, err := aws.NewCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing pricing catalog: %w", err)
	}

	eng := engine.New(aws.NewRegistry(), catalog, defaultRegion)
	report, err := eng.Estimate(ctx, arch)
	if err != nil {
		return err
	}

	formatter, ok := output.ForFormat(output.Format(outputFormat))
	if !ok {
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
	if err := formatter.Render(os.Stdout, report); err != nil {
		return err
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		if err := (output.JSONFormatter{}).Render(f, report); err != nil {
			return fmt.Errorf("writing report file: %w", err)
		}
		fmt.Printf("\nReport written to %s\n", outputFile)
	}

	return nil
}
