package models

import "time"

// Category groups questions. Categories are not sensitive and are stored in
// clear.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// CategoryStat is the number of questions stored for one category.
type CategoryStat struct {
	CategoryID    int64  `json:"category_id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}
