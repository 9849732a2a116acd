package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/mock"
	"github.com/MKhiriev/go-quiz-keeper/internal/service"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

const (
	testAdminToken = "admin-token"
	testHashKey    = "test-hash-key"
)

// serviceMocks holds one gomock double per service of a test handler.
type serviceMocks struct {
	auth        *mock.MockAuthService
	categories  *mock.MockCategoryService
	questions   *mock.MockQuestionService
	quiz        *mock.MockQuizService
	leaderboard *mock.MockLeaderboardService
	stats       *mock.MockStatsService
	appInfo     *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services. cfg may carry a hash
// key to switch on body integrity checks.
func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:        mock.NewMockAuthService(ctrl),
		categories:  mock.NewMockCategoryService(ctrl),
		questions:   mock.NewMockQuestionService(ctrl),
		quiz:        mock.NewMockQuizService(ctrl),
		leaderboard: mock.NewMockLeaderboardService(ctrl),
		stats:       mock.NewMockStatsService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:        m.auth,
		CategoryService:    m.categories,
		QuestionService:    m.questions,
		QuizService:        m.quiz,
		LeaderboardService: m.leaderboard,
		StatsService:       m.stats,
		AppInfoService:     m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// expectAdmin makes the auth mock accept testAdminToken once.
func (m *serviceMocks) expectAdmin() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), testAdminToken).
		Return(models.Session{Subject: models.AdminSubject}, nil)
}

// serve runs a request through the full router.
func serve(h *Handler, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func adminHeader() http.Header {
	return http.Header{"Authorization": {"Bearer " + testAdminToken}}
}

// decodeBody unmarshals the recorder body into a T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
