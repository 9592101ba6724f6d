// Package sink persists the finalized scoreboard as a spreadsheet.
package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultOutputFile is the spreadsheet written into the resume folder.
const DefaultOutputFile = "resume_scores.xlsx"

const (
	sheetName         = "Sheet1"
	headerFileName    = "File Name"
	headerScoreColumn = "Relevance Score"
)

// WriteScoreboard writes the scoreboard to path as a two-column spreadsheet:
// file name and relevance score, one row per document plus a header row.
// Failure entries appear as 0.0 scores, indistinguishable from true zeros.
func WriteScoreboard(board *types.Scoreboard, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := setRow(f, 1, headerFileName, headerScoreColumn); err != nil {
		return err
	}
	for i, entry := range board.Entries {
		if err := setRow(f, i+2, entry.FileName, entry.RelevanceScore); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write scoreboard to %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, row int, fileName any, score any) error {
	nameCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	scoreCell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetCellValue(sheetName, nameCell, fileName); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", nameCell, err)
	}
	if err := f.SetCellValue(sheetName, scoreCell, score); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", scoreCell, err)
	}
	return nil
}
