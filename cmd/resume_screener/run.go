package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/sink"
	"github.com/jonathan/resume-screener/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Screen a folder of resumes against a job description",
	Long: `Runs the screening batch end-to-end: enumeration -> extraction (with OCR fallback) -> normalization -> section classification -> TF-IDF relevance scoring -> spreadsheet output.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScreeningCmd,
}

var (
	runConfigPath  string
	runResumeDir   string
	runJob         string
	runJobURL      string
	runOutput      string
	runWorkers     int
	runOCRBinary   string
	runVerbose     bool
	runDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResumeDir, "resumes", "r", "", "Folder containing PDF resumes")
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the scores spreadsheet (default: <resumes>/resume_scores.xlsx)")
	runCommand.Flags().IntVar(&runWorkers, "workers", 0, "Concurrent document workers (default 1, sequential)")
	runCommand.Flags().StringVar(&runOCRBinary, "ocr-binary", "", "tesseract executable to use for scanned PDFs")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for scoreboard persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runScreeningCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resumes") {
		cfg.ResumeDir = runResumeDir
	}
	if cmd.Flags().Changed("job") {
		cfg.JobDescription = runJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobDescriptionURL = runJobURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = runWorkers
	}
	if cmd.Flags().Changed("ocr-binary") {
		cfg.OCRBinary = runOCRBinary
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Workers: 1})

	// Step 4: Validate required fields
	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resumes must be provided (via flag or config)")
	}
	if cfg.JobDescription == "" && cfg.JobDescriptionURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = filepath.Join(cfg.ResumeDir, sink.DefaultOutputFile)
	}

	// Step 5: Read the job description once for the whole run
	var jobDescription string
	var err error
	if cfg.JobDescriptionURL != "" {
		fmt.Printf("Fetching job description from %s...\n", cfg.JobDescriptionURL)
		jobDescription, err = ingestion.FetchJobDescription(ctx, cfg.JobDescriptionURL)
	} else {
		jobDescription, err = ingestion.LoadJobDescription(cfg.JobDescription)
	}
	if err != nil {
		return fmt.Errorf("job description unreadable: %w", err)
	}

	// Step 6: Connect to the database if configured; persistence failures
	// degrade to a warning, never abort the batch
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
		}
	}

	// Step 7: Run the screening batch
	printer := observability.NewPrinter(os.Stdout)
	board, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumeDir:      cfg.ResumeDir,
		JobDescription: jobDescription,
		Workers:        cfg.Workers,
		Extractor:      ingestion.PDFExtractor{},
		OCR:            &ingestion.TesseractOCR{Binary: cfg.OCRBinary},
		OnProgress:     progressReporter(printer, cfg.Verbose),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintScoreboard(board)
	}

	// Step 8: Persist results
	if err := sink.WriteScoreboard(board, cfg.Output); err != nil {
		return err
	}
	fmt.Printf("Scores saved to %s\n", cfg.Output)

	if database != nil {
		if err := persistRun(ctx, database, cfg, jobDescription, board); err != nil {
			fmt.Printf("Warning: Failed to persist run: %v\n", err)
		}
	}

	return nil
}

// progressReporter prints one line per batch step; in verbose mode it also
// prints the classified sections of each successfully parsed resume.
func progressReporter(printer *observability.Printer, verbose bool) pipeline.ProgressCallback {
	return func(event pipeline.ProgressEvent) {
		fmt.Println(event.Message)
		if !verbose || event.Step != pipeline.StepDocument {
			return
		}
		if resume, ok := event.Content.(*types.StructuredResume); ok {
			printer.PrintStructuredResume(event.FileName, resume)
		}
	}
}

func persistRun(ctx context.Context, database *db.DB, cfg config.Config, jobDescription string, board *types.Scoreboard) error {
	runID, err := database.CreateRun(ctx, cfg.ResumeDir, jobDescription)
	if err != nil {
		return err
	}
	if err := database.SaveScoreboard(ctx, runID, board); err != nil {
		return err
	}
	return database.CompleteRun(ctx, runID, "completed")
}
