package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/variomics/varclass/infrastructure/literature"
	"github.com/variomics/varclass/internal/application"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/report"
)

type classifyOptions struct {
	guidelines       string
	format           string
	sequential       bool
	geneOverlay      string
	metascoreOverlay string
	narrative        string
}

func newClassifyCommand() *cobra.Command {
	opts := classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <case-file.yaml>",
		Short: "Classify a variant from an evidence case file",
		Long: `Classify reads a YAML evidence case file describing one variant and
prints the resulting classification as a plain-text report or JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.guidelines, "guidelines", "2023", "guideline revision to apply (2015 or 2023)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text or json)")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "run evaluators sequentially instead of in parallel")
	cmd.Flags().StringVar(&opts.geneOverlay, "gene-overlay", "", "YAML overlay extending the gene knowledge base")
	cmd.Flags().StringVar(&opts.metascoreOverlay, "metascore-overlay", "", "YAML overlay extending the metascore tables")
	cmd.Flags().StringVar(&opts.narrative, "narrative", "", "narrative provider for the report (anthropic, openai, or google)")

	return cmd
}

func runClassify(cmd *cobra.Command, casePath string, opts classifyOptions) error {
	rec, err := loadCaseFile(casePath)
	if err != nil {
		return err
	}

	cfg := application.DefaultEngineConfig()
	cfg.GuidelineMode = opts.guidelines
	cfg.Parallel = !opts.sequential
	cfg.GeneOverlayPath = opts.geneOverlay
	cfg.MetascoreOverlayPath = opts.metascoreOverlay

	engine, err := application.BuildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := engine.Classify(ctx, rec)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	switch opts.format {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		narrative := ""
		if opts.narrative != "" {
			narrative, err = generateNarrative(cmd, opts.narrative, rec, result)
			if err != nil {
				// The narrative is advisory; report the failure and continue.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: narrative generation failed: %v\n", err)
			}
		}
		renderer := report.NewRenderer(language.English)
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(rec, result, narrative))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected text or json)", opts.format)
	}
}

// loadCaseFile reads one EvidenceRecord from a YAML case file. Unknown
// fields are rejected to catch typos in hand-written cases.
func loadCaseFile(path string) (*domain.EvidenceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", path, err)
	}

	var rec domain.EvidenceRecord
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, err)
	}
	return &rec, nil
}

func generateNarrative(
	cmd *cobra.Command,
	provider string,
	rec *domain.EvidenceRecord,
	result domain.ClassificationResult,
) (string, error) {
	apiKey := os.Getenv(apiKeyEnvVar(provider))
	if apiKey == "" {
		return "", fmt.Errorf("environment variable %s is not set", apiKeyEnvVar(provider))
	}

	client, err := literature.NewClient(provider, literature.ClientConfig{
		APIKey: apiKey,
		Middleware: []literature.Middleware{
			literature.RetryMiddleware(2, time.Second, 10*time.Second),
		},
	})
	if err != nil {
		return "", err
	}

	return literature.NewSummarizer(client).Narrative(cmd.Context(), rec, result)
}

func apiKeyEnvVar(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	case "google":
		return "GEMINI_API_KEY"
	default:
		return "VARCLASS_NARRATIVE_API_KEY"
	}
}
