// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AllCategoriesID is the category id recorded for quizzes that mixed
// questions from every category.
const AllCategoriesID int64 = 0

// AllCategoriesName is the category name shown for mixed quizzes.
const AllCategoriesName = "All Categories"

// Score is a completed quiz attempt.
type Score struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	CategoryID     int64     `json:"category_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Percentage returns the score as a percentage of the question count.
func (s Score) Percentage() float64 {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return float64(s.Score) * 100.0 / float64(s.TotalQuestions)
}

// ScorePayload is the encrypted part of a [Score].
type ScorePayload struct {
	Username       string `json:"username"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

// Payload extracts the sensitive fields of s.
func (s Score) Payload() ScorePayload {
	return ScorePayload{Username: s.Username, Score: s.Score, TotalQuestions: s.TotalQuestions}
}

// WithPayload returns a copy of s with its sensitive fields replaced by p.
func (s Score) WithPayload(p ScorePayload) Score {
	s.Username = p.Username
	s.Score = p.Score
	s.TotalQuestions = p.TotalQuestions
	return s
}

// ScoreFilter narrows score listings. A nil CategoryID means every category,
// including mixed quizzes.
type ScoreFilter struct {
	CategoryID *int64
}
