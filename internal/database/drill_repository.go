package database

import (
	"fmt"
	"strings"

	"github.com/example/frazbot/pkg/models"
)

// DrillRepository handles database operations for the drill log
type DrillRepository struct{}

// NewDrillRepository creates a new repository instance
func NewDrillRepository() *DrillRepository {
	return &DrillRepository{}
}

// Log records a sentence sent to a user
func (r *DrillRepository) Log(userID int64, sentence string) error {
	query := "INSERT INTO drills (user_id, sentence) VALUES (?, ?)"
	if DB.DriverName() == "postgres" {
		query = "INSERT INTO drills (user_id, sentence) VALUES ($1, $2)"
	}

	if _, err := DB.Exec(query, userID, sentence); err != nil {
		return fmt.Errorf("failed to log drill: %v", err)
	}
	return nil
}

// GetRecentForUser returns the user's latest drills, newest first
func (r *DrillRepository) GetRecentForUser(userID int64, limit int) ([]models.Drill, error) {
	query := `
		SELECT id, user_id, sentence, created_at
		FROM drills WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ?`
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", 1)
		query = strings.Replace(query, "?", "$2", 1)
	}

	var drills []models.Drill
	if err := DB.Select(&drills, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get drills: %v", err)
	}
	return drills, nil
}

// CountForUser returns how many drills the user has received
func (r *DrillRepository) CountForUser(userID int64) (int, error) {
	query := "SELECT COUNT(*) FROM drills WHERE user_id = ?"
	if DB.DriverName() == "postgres" {
		query = "SELECT COUNT(*) FROM drills WHERE user_id = $1"
	}

	var count int
	if err := DB.Get(&count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count drills: %v", err)
	}
	return count, nil
}
