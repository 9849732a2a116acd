package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quiz-keeper/internal/adapter"
	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/mock"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// fakePasswordReader returns a fixed password and counts prompts.
type fakePasswordReader struct {
	password string
	err      error
	calls    int
}

func (f *fakePasswordReader) ReadPassword(string) (string, error) {
	f.calls++
	return f.password, f.err
}

func newTestApp(t *testing.T, cfg config.ClientApp) (*App, *mock.MockServerAdapter, *fakePasswordReader, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	reader := &fakePasswordReader{password: "prompted"}
	out := &bytes.Buffer{}

	return NewApp(serverAdapter, reader, cfg, out, logger.Nop()), serverAdapter, reader, out
}

func writeQuestionFile(t *testing.T, q models.Question) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "q.json")
	data := []byte(`{"category_id":1,"difficulty":"easy","question":"` + q.Prompt + `","options":["Pete","Ae"],"correct_answer":1}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ── dispatch ──

func TestRun_Usage(t *testing.T) {
	app, _, _, out := newTestApp(t, config.ClientApp{})

	require.NoError(t, app.Run(context.Background(), nil))

	assert.Contains(t, out.String(), "add-question")
	assert.Contains(t, out.String(), "leaderboard")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _, _ := newTestApp(t, config.ClientApp{})

	err := app.Run(context.Background(), []string{"explode"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_PublicCommandDoesNotLogin(t *testing.T) {
	app, m, reader, out := newTestApp(t, config.ClientApp{})
	m.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{{ID: 2, Name: "Romantic Moments"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"categories"}))

	assert.Zero(t, reader.calls)
	assert.Contains(t, out.String(), "Romantic Moments")
}

// ── login ──

func TestRun_AdminPasswordFromConfig(t *testing.T) {
	app, m, reader, _ := newTestApp(t, config.ClientApp{AdminPassword: "from-env"})
	gomock.InOrder(
		m.EXPECT().Token().Return(""),
		m.EXPECT().Login(gomock.Any(), "from-env").Return(nil),
	)
	m.EXPECT().GetStatistics(gomock.Any()).Return(models.Statistics{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"stats"}))

	assert.Zero(t, reader.calls)
}

func TestRun_AdminPasswordPrompted(t *testing.T) {
	app, m, reader, _ := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("")
	m.EXPECT().Login(gomock.Any(), "prompted").Return(nil)
	m.EXPECT().GetStatistics(gomock.Any()).Return(models.Statistics{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"stats"}))

	assert.Equal(t, 1, reader.calls)
}

func TestRun_LoginFails(t *testing.T) {
	app, m, _, _ := newTestApp(t, config.ClientApp{AdminPassword: "wrong"})
	m.EXPECT().Token().Return("")
	m.EXPECT().Login(gomock.Any(), "wrong").Return(adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"questions"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestRun_PromptUnavailable(t *testing.T) {
	app, m, reader, _ := newTestApp(t, config.ClientApp{})
	reader.err = ErrNoTerminal
	m.EXPECT().Token().Return("")

	err := app.Run(context.Background(), []string{"stats"})

	assert.ErrorIs(t, err, ErrNoTerminal)
}

// ── commands ──

func TestQuestions_CategoryFlag(t *testing.T) {
	app, m, _, out := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("tok")
	m.EXPECT().ListQuestions(gomock.Any(), int64(3)).Return([]models.Question{
		{ID: "q1", CategoryID: 3, Prompt: "Who said it?", Options: []string{"Kao", "Pete"}, CorrectAnswer: 1},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"questions", "-category", "3"}))

	assert.Contains(t, out.String(), "Who said it?")
	assert.Contains(t, out.String(), "Pete")
}

func TestAddQuestion_FromFile(t *testing.T) {
	app, m, _, out := newTestApp(t, config.ClientApp{})
	path := writeQuestionFile(t, models.Question{Prompt: "Who is Kao's best friend?"})

	m.EXPECT().Token().Return("tok")
	m.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.Question) (models.Question, error) {
			assert.Equal(t, "Who is Kao's best friend?", q.Prompt)
			assert.Equal(t, []string{"Pete", "Ae"}, q.Options)
			assert.Equal(t, 1, q.CorrectAnswer)
			q.ID = "q-new"
			return q, nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"add-question", "-file", path}))

	assert.Contains(t, out.String(), "q-new")
}

func TestAddQuestion_MissingFile(t *testing.T) {
	app, m, _, _ := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("tok")

	err := app.Run(context.Background(), []string{"add-question"})

	assert.ErrorIs(t, err, ErrMissingFlag)
}

func TestUpdateQuestion(t *testing.T) {
	app, m, _, _ := newTestApp(t, config.ClientApp{})
	path := writeQuestionFile(t, models.Question{Prompt: "Updated?"})

	m.EXPECT().Token().Return("tok")
	m.EXPECT().UpdateQuestion(gomock.Any(), "q1", gomock.Any()).Return(models.Question{ID: "q1"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update-question", "-id", "q1", "-file", path}))
}

func TestDeleteCommands(t *testing.T) {
	app, m, _, out := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("tok").Times(2)
	m.EXPECT().DeleteQuestion(gomock.Any(), "q1").Return(nil)
	m.EXPECT().DeleteScore(gomock.Any(), "s1").Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete-question", "-id", "q1"}))
	require.NoError(t, app.Run(context.Background(), []string{"delete-score", "-id", "s1"}))

	assert.Contains(t, out.String(), "question q1 deleted")
	assert.Contains(t, out.String(), "score s1 deleted")
}

func TestDeleteQuestion_MissingID(t *testing.T) {
	app, m, _, _ := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("tok")

	err := app.Run(context.Background(), []string{"delete-question"})

	assert.ErrorIs(t, err, ErrMissingFlag)
}

func TestLeaderboard_Flags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantCategory *int64
		wantLimit    int
	}{
		{name: "overall", args: nil},
		{name: "category", args: []string{"-category", "2", "-limit", "3"}, wantCategory: func() *int64 { v := int64(2); return &v }(), wantLimit: 3},
		{name: "mixed quizzes", args: []string{"-category", "0"}, wantCategory: func() *int64 { v := int64(0); return &v }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m, _, out := newTestApp(t, config.ClientApp{})
			m.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any(), tt.wantLimit).DoAndReturn(
				func(_ context.Context, categoryID *int64, _ int) (models.Leaderboard, error) {
					assert.Equal(t, tt.wantCategory, categoryID)
					return models.Leaderboard{
						CategoryID: categoryID,
						Entries:    []models.LeaderboardEntry{{Username: "pete", Score: 9, TotalQuestions: 10, Percentage: 90, CompletedAt: time.Now()}},
						Overall:    []models.OverallLeaderboardEntry{{Username: "ae", AveragePercentage: 75, QuizzesTaken: 2}},
					}, nil
				})

			require.NoError(t, app.Run(context.Background(), append([]string{"leaderboard"}, tt.args...)))

			if tt.wantCategory == nil {
				assert.Contains(t, out.String(), "75.0")
			} else {
				assert.Contains(t, out.String(), "9/10")
			}
		})
	}
}

func TestToken_Copy(t *testing.T) {
	app, m, _, out := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("secret-admin-jwt").AnyTimes()

	var copied string
	app.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	require.NoError(t, app.Run(context.Background(), []string{"token", "-copy"}))

	assert.Equal(t, "secret-admin-jwt", copied)
	assert.NotContains(t, out.String(), "secret-admin-jwt")
}

func TestToken_CopyFails(t *testing.T) {
	app, m, _, _ := newTestApp(t, config.ClientApp{})
	m.EXPECT().Token().Return("tok").AnyTimes()
	app.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	err := app.Run(context.Background(), []string{"token", "-copy"})

	assert.ErrorContains(t, err, "no clipboard")
}
