// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StartQuizRequest asks for a new quiz. CategoryID zero means all categories.
type StartQuizRequest struct {
	Username   string `json:"username"`
	CategoryID int64  `json:"category_id"`
	Limit      uint64 `json:"limit,omitempty"`
}

// Quiz is handed to the player when a quiz starts. Token is the signed quiz
// session that must accompany every check and submit call.
type Quiz struct {
	Token        string           `json:"quiz_token"`
	CategoryID   int64            `json:"category_id"`
	CategoryName string           `json:"category_name"`
	Questions    []PublicQuestion `json:"questions"`
}

// CheckAnswerRequest asks for immediate feedback on a single answer.
type CheckAnswerRequest struct {
	Token      string `json:"quiz_token"`
	QuestionID string `json:"question_id"`
	Answer     int    `json:"answer"`
}

// AnswerResult is the feedback for one answered question.
type AnswerResult struct {
	QuestionID    string `json:"question_id"`
	Selected      int    `json:"selected"`
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// SubmitQuizRequest finishes a quiz. Answers maps question id to the chosen
// option index; unanswered questions count as wrong.
type SubmitQuizRequest struct {
	Token   string         `json:"quiz_token"`
	Answers map[string]int `json:"answers"`
}

// QuizResult is returned after a quiz has been graded and recorded.
type QuizResult struct {
	ScoreID        string         `json:"score_id"`
	Username       string         `json:"username"`
	CategoryName   string         `json:"category_name"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     float64        `json:"percentage"`
	Message        string         `json:"message"`
	Results        []AnswerResult `json:"results"`
}

// QuizSession is the decoded content of a quiz token. It is the explicit
// per-player state that replaces ambient UI session flags.
type QuizSession struct {
	// ID identifies the attempt. The score recorded on submit reuses it, so
	// a quiz can be submitted only once.
	ID           string
	Username     string
	CategoryID   int64
	CategoryName string
	QuestionIDs  []string
	ExpiresAt    time.Time
}

// Contains reports whether questionID belongs to the session.
func (s QuizSession) Contains(questionID string) bool {
	for _, id := range s.QuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}
