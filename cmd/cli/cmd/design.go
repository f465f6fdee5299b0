// Package cmd - design command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"archcost/internal/config"
	"archcost/llm"
)

var (
	designOutput string
	skipQuestion bool
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design [project description]",
	Short: "Design an architecture interactively with an LLM",
	Long: `Run a short requirements interview and generate an architecture
description ready for 'archcost estimate'.

The Anthropic API key is read from the ANTHROPIC_API_KEY environment variable.

Examples:
  archcost design "e-commerce site with 10k daily users"
  archcost design --no-questions -o arch.json "internal CRUD app"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDesign,
}

func init() {
	designCmd.Flags().StringVarP(&designOutput, "output", "o", "architecture.json", "file to write the generated architecture to")
	designCmd.Flags().BoolVar(&skipQuestion, "no-questions", false, "skip the interview and generate directly")
}

func runDesign(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	projectDetails := strings.Join(args, " ")

	provider := llm.NewChain(
		llm.NewAnthropicProvider(cfg.LLM.Model, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second),
	)
	designer := llm.NewDesigner(provider, cfg.LLM.MaxQuestions)

	var history []llm.QA
	if !skipQuestion {
		reader := bufio.NewReader(os.Stdin)
		for {
			question, err := designer.NextQuestion(ctx, projectDetails, history)
			if err != nil {
				return err
			}
			if question == "" {
				break
			}

			fmt.Printf("\n%s\n> ", question)
			answer, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			answer = strings.TrimSpace(answer)
			if answer == "" || strings.EqualFold(answer, "done") {
				break
			}
			history = append(history, llm.QA{Question: question, Answer: answer})
		}
	}

	fmt.Println("\nGenerating architecture...")
	arch, raw, err := designer.GenerateArchitecture(ctx, projectDetails, history)
	if err != nil {
		return err
	}

	if err := os.WriteFile(designOutput, raw, 0o644); err != nil {
		return fmt.Errorf("writing architecture file: %w", err)
	}

	fmt.Printf("Generated %d nodes", len(arch.Nodes))
	if arch.Title != "" {
		fmt.Printf(" for %q", arch.Title)
	}
	fmt.Printf("\nArchitecture written to %s\n", designOutput)
	fmt.Printf("Next: archcost estimate -f %s\n", designOutput)
	return nil
}
