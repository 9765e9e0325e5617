package database

import (
	"fmt"
	"strings"
)

// TargetRepository handles database operations for per-user learning targets
type TargetRepository struct{}

// NewTargetRepository creates a new repository instance
func NewTargetRepository() *TargetRepository {
	return &TargetRepository{}
}

// GetForUser returns the user's learning-target words, lower-cased
func (r *TargetRepository) GetForUser(userID int64) ([]string, error) {
	query := "SELECT word_text FROM learning_targets WHERE user_id = ? ORDER BY created_at"
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", -1)
	}

	var targets []string
	err := DB.Select(&targets, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get learning targets: %v", err)
	}
	return targets, nil
}

// Add puts a word on the user's learning list. The word text is stored
// lower-cased so it matches the lexical index.
func (r *TargetRepository) Add(userID int64, wordText string) error {
	text := strings.ToLower(strings.TrimSpace(wordText))
	if text == "" {
		return fmt.Errorf("empty learning target")
	}

	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO learning_targets (user_id, word_text) VALUES ($1, $2)
			ON CONFLICT (user_id, word_text) DO NOTHING
		`
	} else {
		query = `INSERT OR IGNORE INTO learning_targets (user_id, word_text) VALUES (?, ?)`
	}

	if _, err := DB.Exec(query, userID, text); err != nil {
		return fmt.Errorf("failed to add learning target: %v", err)
	}
	return nil
}

// Remove takes a word off the user's learning list
func (r *TargetRepository) Remove(userID int64, wordText string) error {
	query := "DELETE FROM learning_targets WHERE user_id = ? AND word_text = ?"
	if DB.DriverName() == "postgres" {
		query = "DELETE FROM learning_targets WHERE user_id = $1 AND word_text = $2"
	}

	if _, err := DB.Exec(query, userID, strings.ToLower(strings.TrimSpace(wordText))); err != nil {
		return fmt.Errorf("failed to remove learning target: %v", err)
	}
	return nil
}
