package models

import "time"

// Note is a personal note owned by a single user.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
}
