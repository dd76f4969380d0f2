package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/freelanceguard/freelance-guard/internal/assess"
	"github.com/freelanceguard/freelance-guard/internal/knowledge"
	"github.com/freelanceguard/freelance-guard/internal/llm"
	"github.com/freelanceguard/freelance-guard/internal/observability"
	"github.com/freelanceguard/freelance-guard/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot risk assessment on a client message",
	Long:  "Evaluate a prospective client message and print the structured risk assessment as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeMessage     string
	analyzeInputFile   string
	analyzeOutputFile  string
	analyzeIndustry    string
	analyzeExperience  string
	analyzeProjectType string
	analyzeAPIKey      string
	analyzeModel       string
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeMessage, "message", "m", "", "Client message to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to a text file containing the client message")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", string(knowledge.DefaultIndustry), "Freelance industry (designer, developer, photographer, consultant, copywriter, other)")
	analyzeCmd.Flags().StringVar(&analyzeExperience, "experience", string(knowledge.DefaultExperience), "Experience level (beginner, experienced, expert)")
	analyzeCmd.Flags().StringVar(&analyzeProjectType, "project-type", "", "Optional project type description")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Model name override")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted assessment summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeMessage != "" && analyzeInputFile != "" {
		return fmt.Errorf("cannot use --message with --in")
	}
	if analyzeMessage == "" && analyzeInputFile == "" {
		return fmt.Errorf("must provide either --message or --in")
	}

	message := analyzeMessage
	if analyzeInputFile != "" {
		content, err := os.ReadFile(analyzeInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		message = string(content)
	}

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	experience, err := knowledge.ParseExperience(analyzeExperience)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(analyzeModel), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	service := assess.NewService(client)
	assessment, err := service.Assess(ctx, assess.EvaluationRequest{
		Message:     message,
		Industry:    knowledge.ParseIndustry(analyzeIndustry),
		Experience:  experience,
		ProjectType: analyzeProjectType,
	})
	if err != nil {
		var tooShort *assess.InputTooShortError
		if errors.As(err, &tooShort) {
			return fmt.Errorf("message too short, please provide more details")
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		// Validate against schema (if schema file exists)
		if schemaPath := schemas.ResolveSchemaPath("schemas/assessment.schema.json"); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, analyzeOutputFile); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("generated JSON does not validate against schema: %w", err)
				}
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAssessment(assessment)
	}

	return nil
}
