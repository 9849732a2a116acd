package service

import (
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

// answerLocks remembers the first answer checked for each question of a
// running quiz. Later checks and the final submit are graded against it, so
// feedback from a check cannot be turned into a better score.
//
// Entries live until the quiz is submitted or its token expires.
type answerLocks struct {
	mu       sync.Mutex
	sessions map[string]*lockedAnswers
	now      func() time.Time
}

type lockedAnswers struct {
	expiresAt time.Time
	answers   map[string]int
}

func newAnswerLocks() *answerLocks {
	return &answerLocks{
		sessions: make(map[string]*lockedAnswers),
		now:      time.Now,
	}
}

// lock records answer for questionID unless an answer is already locked,
// and returns the answer that counts.
func (l *answerLocks) lock(session models.QuizSession, questionID string, answer int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()

	locked, ok := l.sessions[session.ID]
	if !ok {
		locked = &lockedAnswers{expiresAt: session.ExpiresAt, answers: make(map[string]int)}
		l.sessions[session.ID] = locked
	}

	if first, ok := locked.answers[questionID]; ok {
		return first
	}
	locked.answers[questionID] = answer
	return answer
}

// answers returns a copy of the locked answers of a session.
func (l *answerLocks) answers(sessionID string) map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	locked, ok := l.sessions[sessionID]
	if !ok {
		return nil
	}
	return maps.Clone(locked.answers)
}

func (l *answerLocks) release(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, sessionID)
}

// pruneLocked drops sessions whose token has expired. l.mu must be held.
func (l *answerLocks) pruneLocked() {
	now := l.now()
	for id, locked := range l.sessions {
		if !locked.expiresAt.IsZero() && now.After(locked.expiresAt) {
			delete(l.sessions, id)
		}
	}
}
