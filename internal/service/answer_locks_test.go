package service

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ── answerLocks ──────────────────────────────────────────────────────────────

func TestAnswerLocks_FirstAnswerWins(t *testing.T) {
	l := newAnswerLocks()
	session := models.QuizSession{ID: "a", ExpiresAt: time.Now().Add(time.Hour)}

	assert.Equal(t, 3, l.lock(session, "q1", 3))
	assert.Equal(t, 3, l.lock(session, "q1", 1))
	assert.Equal(t, 0, l.lock(session, "q2", 0))
	assert.Equal(t, map[string]int{"q1": 3, "q2": 0}, l.answers("a"))

	other := models.QuizSession{ID: "b", ExpiresAt: time.Now().Add(time.Hour)}
	assert.Equal(t, 1, l.lock(other, "q1", 1), "sessions do not share locks")

	l.release("a")
	assert.Nil(t, l.answers("a"))
	assert.Equal(t, map[string]int{"q1": 1}, l.answers("b"))
}

// TestAnswerLocks_ExpiredSessionsArePruned verifies that sessions whose
// token has expired are dropped on the next lock.
func TestAnswerLocks_ExpiredSessionsArePruned(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newAnswerLocks()
	l.now = func() time.Time { return now }

	l.lock(models.QuizSession{ID: "old", ExpiresAt: now.Add(time.Minute)}, "q1", 0)
	now = now.Add(2 * time.Minute)
	l.lock(models.QuizSession{ID: "new", ExpiresAt: now.Add(time.Minute)}, "q1", 0)

	assert.Nil(t, l.answers("old"))
	assert.NotNil(t, l.answers("new"))
}

// TestAnswerLocks_ConcurrentChecks verifies one answer is locked when many
// checks race on the same question.
func TestAnswerLocks_ConcurrentChecks(t *testing.T) {
	l := newAnswerLocks()
	session := models.QuizSession{ID: "a", ExpiresAt: time.Now().Add(time.Hour)}

	var wg sync.WaitGroup
	got := make([]int, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = l.lock(session, "q1", i)
		}()
	}
	wg.Wait()

	for _, answer := range got {
		assert.Equal(t, got[0], answer)
	}
}
