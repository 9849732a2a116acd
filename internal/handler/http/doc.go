// Package http implements the JSON API of the quiz server.
//
// Public routes serve categories, quizzes and the leaderboard. Routes under
// /api/admin (except login) require a bearer admin token; the auth
// middleware turns it into a models.Session in the request context, which
// the service layer checks before touching questions or scores. Optional
// HMAC integrity of admin request bodies is enforced through the HashSHA256
// header when the server has a hash key.
package http
