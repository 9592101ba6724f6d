package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-screener/internal/fetch"
)

// LoadJobDescription reads a job description from a UTF-8 text file and
// trims surrounding whitespace. The result is treated as a constant for the
// whole batch run.
func LoadJobDescription(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job description file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}

// FetchJobDescription retrieves a job description from a URL and strips the
// HTML down to visible text.
func FetchJobDescription(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}

	text, err := fetch.ExtractText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("failed to extract job description text: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("job description at %s contains no visible text", urlStr)
	}
	return text, nil
}
