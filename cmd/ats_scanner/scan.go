package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scanner/internal/config"
	"github.com/jonathan/ats-scanner/internal/nlp"
	"github.com/jonathan/ats-scanner/internal/observability"
	"github.com/jonathan/ats-scanner/internal/pipeline"
	"github.com/jonathan/ats-scanner/internal/report"
)

var scanCommand = &cobra.Command{
	Use:   "scan <document-path>",
	Short: "Scan a resume document for ATS compatibility",
	Long: `Runs the full analysis pipeline over one document: text extraction ->
formatting analysis + contact/skill/title/education extraction -> scoring ->
report generation.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanConfigPath string
	scanOutput     string
	scanSkillsDB   string
	scanAPIKey     string
	scanModel      string
	scanHTML       bool
	scanPDF        bool
	scanVerbose    bool
	scanDebug      bool
	scanJSONLogs   bool
)

func init() {
	// Persistent so the bare `ats_scanner <document-path>` form accepts the
	// same flags as the scan subcommand.
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&scanConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVarP(&scanOutput, "output", "o", "", `Report file path (default "ats_report.txt")`)
	flags.StringVar(&scanSkillsDB, "skills-db", "", "Skill taxonomy database JSON (default: bundled data/skills.json)")
	flags.StringVar(&scanAPIKey, "api-key", "", "Gemini API key for LLM phrase segmentation (optional, defaults to GEMINI_API_KEY env var)")
	flags.StringVar(&scanModel, "gemini-model", "", "Gemini model for phrase segmentation")
	flags.BoolVar(&scanHTML, "html", false, "Also write an HTML report")
	flags.BoolVar(&scanPDF, "pdf", false, "Also print the HTML report to PDF (requires Chrome)")
	flags.BoolVarP(&scanVerbose, "verbose", "v", false, "Print analysis sections to stdout")
	flags.BoolVarP(&scanDebug, "debug", "d", false, "Verbose/debug logging")
	flags.BoolVarP(&scanJSONLogs, "json", "j", false, "JSON format for logging")

	rootCmd.AddCommand(scanCommand)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if scanConfigPath != "" {
		loaded, err := config.Load(scanConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Apply CLI overrides; the document path is always positional
	cfg.Document = args[0]
	if cmd.Flags().Changed("output") {
		cfg.Output = scanOutput
	}
	if cmd.Flags().Changed("skills-db") {
		cfg.SkillsDB = scanSkillsDB
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scanAPIKey
	}
	if cmd.Flags().Changed("gemini-model") {
		cfg.GeminiModel = scanModel
	}
	if cmd.Flags().Changed("html") {
		cfg.HTML = scanHTML
	}
	if cmd.Flags().Changed("pdf") {
		cfg.PDF = scanPDF
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scanVerbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = scanDebug
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONLogs = scanJSONLogs
	}

	// Step 3: Defaults and environment fallbacks
	cfg = cfg.MergeWithDefaults(config.Config{Output: report.DefaultOutputFile})
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 4: Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// NLP collaborators are loaded once, before the scan, so a missing or
	// malformed skill database fails here instead of mid-pipeline.
	models, err := nlp.LoadModels(ctx, nlp.LoadOptions{
		SkillDBPath: cfg.SkillsDB,
		APIKey:      cfg.APIKey,
		GeminiModel: cfg.GeminiModel,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load NLP models: %w", err)
	}
	defer func() { _ = models.Close() }()

	analysis, scanErr := pipeline.Scan(ctx, pipeline.Options{
		DocumentPath: cfg.Document,
		Models:       models,
		Logger:       logger,
	})
	if analysis == nil {
		return scanErr
	}
	// An extraction failure still yields a degenerate analysis; fall through
	// so the minimal report gets written.

	logger.Info("generating ATS report", zap.String("output", cfg.Output))
	if err := report.Write(analysis, cfg.Output); err != nil {
		return err
	}
	logger.Info("ATS report saved", zap.String("output", cfg.Output))

	if cfg.HTML || cfg.PDF {
		html, err := report.RenderHTML(analysis)
		if err != nil {
			return err
		}
		if cfg.HTML {
			htmlPath := siblingPath(cfg.Output, ".html")
			if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
				return fmt.Errorf("failed to write HTML report: %w", err)
			}
			logger.Info("HTML report saved", zap.String("output", htmlPath))
		}
		if cfg.PDF {
			pdfPath := siblingPath(cfg.Output, ".pdf")
			if err := report.WritePDF(ctx, html, pdfPath); err != nil {
				return err
			}
			logger.Info("PDF report saved", zap.String("output", pdfPath))
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContact(&analysis.Contact)
		printer.PrintSkills(&analysis.Skills)
		printer.PrintFormatting(&analysis.Formatting)
		printer.PrintScore(analysis)
	}

	fmt.Printf("\nATS Compatibility Score: %d/100\n", analysis.ATSScore)
	fmt.Printf("Full report saved to: %s\n", cfg.Output)

	return nil
}

// siblingPath swaps the extension of the text report path for a renderer
// output, e.g. ats_report.txt -> ats_report.html.
func siblingPath(outputPath, ext string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ext
}
