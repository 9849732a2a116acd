package models

import "time"

// LeaderboardEntry is one row of a per-category leaderboard.
type LeaderboardEntry struct {
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	CompletedAt    time.Time `json:"completed_at"`
}

// OverallLeaderboardEntry aggregates every attempt of one user.
type OverallLeaderboardEntry struct {
	Username          string    `json:"username"`
	AveragePercentage float64   `json:"avg_percentage"`
	QuizzesTaken      int       `json:"quizzes_taken"`
	LastQuiz          time.Time `json:"last_quiz"`
}

// Leaderboard is the response of the leaderboard endpoint. Exactly one of
// Entries and Overall is populated, depending on whether a category was
// requested.
type Leaderboard struct {
	CategoryID *int64                    `json:"category_id,omitempty"`
	Entries    []LeaderboardEntry        `json:"entries,omitempty"`
	Overall    []OverallLeaderboardEntry `json:"overall,omitempty"`
}

// Statistics is the admin dashboard summary.
type Statistics struct {
	CategoryStats  []CategoryStat `json:"category_stats"`
	TotalScores    int            `json:"total_scores"`
	UniqueUsers    int            `json:"unique_users"`
	AverageScore   float64        `json:"avg_score"`
	TotalQuestions int            `json:"total_questions"`
}
