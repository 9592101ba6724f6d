// Package pipeline provides the high-level orchestration for the resume screening process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// resumeExtension is the only file extension the enumeration accepts.
const resumeExtension = ".pdf"

// ErrResumeFolderNotFound is the one fatal, non-isolated error of a batch:
// the configured resume folder does not exist.
var ErrResumeFolderNotFound = fmt.Errorf("resume folder not found")

// ProgressEvent represents a progress update during batch execution. For
// document steps, Content carries the classified *types.StructuredResume
// when classification succeeded.
type ProgressEvent struct {
	Step     string  `json:"step"`
	FileName string  `json:"file_name,omitempty"`
	Message  string  `json:"message"`
	Score    float64 `json:"score,omitempty"`
	Content  any     `json:"content,omitempty"`
}

// ProgressCallback is called when batch progress occurs.
type ProgressCallback func(event ProgressEvent)

// Progress step names.
const (
	StepEnumerate = "enumerate"
	StepDocument  = "document"
	StepFinalize  = "finalize"
)

// RunOptions holds configuration for running the screening batch.
type RunOptions struct {
	ResumeDir      string
	JobDescription string
	Workers        int
	Extractor      ingestion.TextExtractor
	OCR            ingestion.Recognizer
	OnProgress     ProgressCallback
}

// documentResult is the per-document outcome: a score, or a failure that the
// orchestrator maps to a zero-score entry. A single bad document never
// aborts the batch.
type documentResult struct {
	fileName string
	score    float64
	resume   *types.StructuredResume
	err      error
}

// notify delivers a progress update to the callback when one is configured,
// or to stdout otherwise, so the operator always sees diagnostics.
func notify(opts *RunOptions, step, fileName, message string, score float64, content any) {
	if opts.OnProgress == nil {
		fmt.Println(message)
		return
	}
	opts.OnProgress(ProgressEvent{
		Step:     step,
		FileName: fileName,
		Message:  message,
		Score:    score,
		Content:  content,
	})
}

// Run screens every resume in the configured folder against the job
// description and returns one scoreboard entry per document, in enumeration
// order. Per-document failures are absorbed as zero-score entries; only a
// missing resume folder is fatal.
func Run(ctx context.Context, opts RunOptions) (*types.Scoreboard, error) {
	if opts.Extractor == nil {
		opts.Extractor = ingestion.PDFExtractor{}
	}
	if opts.OCR == nil {
		opts.OCR = &ingestion.TesseractOCR{}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	fileNames, err := EnumerateResumes(opts.ResumeDir)
	if err != nil {
		return nil, err
	}
	notify(&opts, StepEnumerate, "", fmt.Sprintf("Found %d resumes in %s", len(fileNames), opts.ResumeDir), 0, nil)

	// Results are written into an index-addressed slice so the final order
	// always matches enumeration order, even under the worker pool.
	results := make([]documentResult, len(fileNames))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, fileName := range fileNames {
		g.Go(func() error {
			path := filepath.Join(opts.ResumeDir, fileName)
			score, resume, err := processDocument(gCtx, &opts, path)
			results[i] = documentResult{fileName: fileName, score: score, resume: resume, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	board := &types.Scoreboard{Entries: make([]types.ScoreboardEntry, 0, len(results))}
	for _, result := range results {
		entry := types.ScoreboardEntry{
			FileName:       result.fileName,
			RelevanceScore: result.score,
			Status:         types.StatusScored,
		}
		message := fmt.Sprintf("Processed %s (score %.2f)", result.fileName, result.score)
		if result.err != nil {
			entry.RelevanceScore = 0.0
			entry.Status = types.StatusFailed
			entry.Cause = result.err.Error()
			message = fmt.Sprintf("Error processing file %s: %v", result.fileName, result.err)
		}
		var content any
		if result.resume != nil {
			content = result.resume
		}
		notify(&opts, StepDocument, entry.FileName, message, entry.RelevanceScore, content)
		board.Entries = append(board.Entries, entry)
	}

	notify(&opts, StepFinalize, "", fmt.Sprintf("Scored %d resumes", len(board.Entries)), 0, nil)
	return board, nil
}

// EnumerateResumes lists the resume file names in dir, sorted, keeping only
// the accepted extension. A missing dir is ErrResumeFolderNotFound.
func EnumerateResumes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResumeFolderNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read resume folder %s: %w", dir, err)
	}

	var fileNames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), resumeExtension) {
			fileNames = append(fileNames, entry.Name())
		}
	}
	sort.Strings(fileNames)
	return fileNames, nil
}

// processDocument runs one resume through extraction, OCR fallback,
// normalization, classification and scoring.
func processDocument(ctx context.Context, opts *RunOptions, path string) (score float64, resume *types.StructuredResume, err error) {
	// PDF parsing can panic on malformed files; a panic is just another
	// per-document failure.
	defer func() {
		if r := recover(); r != nil {
			score = 0.0
			resume = nil
			err = fmt.Errorf("panic while processing %s: %v", filepath.Base(path), r)
		}
	}()

	text, tables, err := opts.Extractor.Extract(path)
	if err != nil {
		return 0.0, nil, err
	}

	if strings.TrimSpace(text) == "" {
		fmt.Printf("Using OCR for scanned PDF: %s\n", path)
		text, err = opts.OCR.RecognizeText(ctx, path)
		if err != nil {
			return 0.0, nil, err
		}
		// OCR recovers no layout, so any table data is discarded.
		tables = nil
	}

	normalized := parsing.Normalize(text)
	resume = parsing.Classify(normalized)
	resume.AttachTables(tables)

	return scoring.Score(resume, opts.JobDescription), resume, nil
}
