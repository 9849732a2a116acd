// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the admin CLI's view of the quiz server's JSON API.
//
// [ServerAdapter] hides the transport; the HTTP implementation
// ([NewHTTPServerAdapter]) is built on resty. Non-2xx responses are mapped to
// the sentinels in errors.go so callers can branch with [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the quiz server. Methods that
// touch questions, categories, scores or statistics need a token obtained
// through Login.
type ServerAdapter interface {
	// Login exchanges the admin password for a bearer token and keeps it
	// for subsequent calls.
	Login(ctx context.Context, password string) error

	// Token returns the bearer token currently held, or "".
	Token() string

	Version(ctx context.Context) (string, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// ListQuestions returns the questions of categoryID, or of every
	// category for [models.AllCategoriesID].
	ListQuestions(ctx context.Context, categoryID int64) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)
	UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error)
	DeleteQuestion(ctx context.Context, id string) error

	// GetLeaderboard returns the ranking of categoryID, or the overall
	// ranking when categoryID is nil. limit <= 0 uses the server default.
	GetLeaderboard(ctx context.Context, categoryID *int64, limit int) (models.Leaderboard, error)
	DeleteScore(ctx context.Context, id string) error

	GetStatistics(ctx context.Context) (models.Statistics, error)
}
