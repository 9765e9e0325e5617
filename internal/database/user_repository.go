package database

import (
	"fmt"
	"strings"

	"github.com/example/frazbot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByTelegramID returns a user by Telegram ID
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	query := `
		SELECT telegram_id, username, first_name, last_name, notification_enabled,
		       notification_hour, drills_per_day, created_at, updated_at
		FROM users WHERE telegram_id = ?`
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", -1)
	}

	var user models.User
	if err := DB.Get(&user, query, telegramID); err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name,
		                   notification_enabled, notification_hour, drills_per_day)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO users (telegram_id, username, first_name, last_name,
			                   notification_enabled, notification_hour, drills_per_day)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
	}

	_, err := DB.Exec(
		query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.NotificationEnabled,
		user.NotificationHour,
		user.DrillsPerDay,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}
	return nil
}

// SetNotificationHour updates the hour at which the user receives drills
func (r *UserRepository) SetNotificationHour(telegramID int64, hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("invalid notification hour: %d", hour)
	}

	query := "UPDATE users SET notification_hour = ?, updated_at = CURRENT_TIMESTAMP WHERE telegram_id = ?"
	if DB.DriverName() == "postgres" {
		query = "UPDATE users SET notification_hour = $1, updated_at = NOW() WHERE telegram_id = $2"
	}

	if _, err := DB.Exec(query, hour, telegramID); err != nil {
		return fmt.Errorf("failed to set notification hour: %v", err)
	}
	return nil
}

// SetNotificationsEnabled toggles scheduled drills for the user
func (r *UserRepository) SetNotificationsEnabled(telegramID int64, enabled bool) error {
	query := "UPDATE users SET notification_enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE telegram_id = ?"
	if DB.DriverName() == "postgres" {
		query = "UPDATE users SET notification_enabled = $1, updated_at = NOW() WHERE telegram_id = $2"
	}

	if _, err := DB.Exec(query, enabled, telegramID); err != nil {
		return fmt.Errorf("failed to update notifications: %v", err)
	}
	return nil
}

// GetUsersForNotification returns users who should receive drills at the
// given hour of day
func (r *UserRepository) GetUsersForNotification(hour int) ([]models.User, error) {
	query := `
		SELECT telegram_id, username, first_name, last_name, notification_enabled,
		       notification_hour, drills_per_day, created_at, updated_at
		FROM users
		WHERE notification_enabled = true AND notification_hour = ?`
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", -1)
	}

	var users []models.User
	if err := DB.Select(&users, query, hour); err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
