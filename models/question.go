// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Difficulty is the coarse difficulty label of a question. It is stored in
// clear next to the ciphertext so that it can be used for filtering.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is the plaintext form of a quiz question. Only ID, CategoryID,
// Difficulty and the timestamps are persisted in clear; everything else is
// sealed into the encrypted payload.
type Question struct {
	ID            string     `json:"id"`
	CategoryID    int64      `json:"category_id"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Prompt        string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correct_answer"`
	Explanation   string     `json:"explanation,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitzero"`
	UpdatedAt     time.Time  `json:"updated_at,omitzero"`
}

// QuestionPayload is the sensitive part of a [Question] that goes through
// the cipher before it reaches storage.
type QuestionPayload struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Payload extracts the sensitive fields of q.
func (q Question) Payload() QuestionPayload {
	return QuestionPayload{
		Prompt:        q.Prompt,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
}

// WithPayload returns a copy of q with its sensitive fields replaced by p.
func (q Question) WithPayload(p QuestionPayload) Question {
	q.Prompt = p.Prompt
	q.Options = p.Options
	q.CorrectAnswer = p.CorrectAnswer
	q.Explanation = p.Explanation
	return q
}

// PublicQuestion is what a player sees while taking a quiz: the correct
// answer and explanation are stripped.
type PublicQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// Public strips the answer key from q.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Prompt: q.Prompt, Options: q.Options}
}

// QuestionFilter narrows [QuestionRepository] listings. A zero CategoryID
// means every category; a zero Limit means no limit.
type QuestionFilter struct {
	CategoryID int64
	Limit      uint64
	Random     bool
}
