// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the quiz-keeper admin command line.
//
// Each invocation runs one sub-command against the server through
// [adapter.ServerAdapter]. Commands that manage questions, categories or
// scores log in first, using QUIZ_ADMIN_PASSWORD when it is set and an
// echo-free terminal prompt otherwise.
package client
