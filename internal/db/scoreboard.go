package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveScoreboard stores one row per scoreboard entry for a run. The entry
// status and failure cause are persisted here even though the spreadsheet
// output keeps failures indistinguishable from zero-similarity results.
func (db *DB) SaveScoreboard(ctx context.Context, runID uuid.UUID, board *types.Scoreboard) error {
	for i, entry := range board.Entries {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO scoreboard_entries (run_id, position, file_name, relevance_score, status, cause)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (run_id, position) DO UPDATE
			 SET file_name = $3, relevance_score = $4, status = $5, cause = $6`,
			runID, i, entry.FileName, entry.RelevanceScore, entry.Status, entry.Cause,
		)
		if err != nil {
			return fmt.Errorf("failed to save scoreboard entry %s: %w", entry.FileName, err)
		}
	}
	return nil
}
