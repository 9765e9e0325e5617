package models

// Drill represents one sentence sent to a user
type Drill struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	Sentence  string `json:"sentence" db:"sentence"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
