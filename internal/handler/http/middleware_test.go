package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/service"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// ── gzip ──

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"hello": "world"}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(plain))
}

func TestGZip_ImplicitStatusStillCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestGZip_NoContentHasNoBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_WithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("raw"))
	})

	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "raw", rec.Body.String())
}

func TestGZip_DecompressesRequest(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte(`{"username":"pete"}`))))
	req.Header.Set("Content-Encoding", "gzip")

	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"username":"pete"}`, got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── body hash ──

func TestVerifyBodyHash(t *testing.T) {
	body := []byte(`{"name":"Lore"}`)
	validHash := utils.NewHasher(testHashKey).SumHex(body)

	tests := []struct {
		name       string
		hashKey    string
		header     string
		wantStatus int
	}{
		{name: "no key configured", wantStatus: http.StatusTeapot},
		{name: "valid hash", hashKey: testHashKey, header: validHash, wantStatus: http.StatusTeapot},
		{name: "wrong hash", hashKey: testHashKey, header: utils.NewHasher("other").SumHex(body), wantStatus: http.StatusBadRequest},
		{name: "missing header", hashKey: testHashKey, wantStatus: http.StatusBadRequest},
		{name: "not hex", hashKey: testHashKey, header: "zz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{}
			cfg.App.HashKey = tt.hashKey
			h, _ := newTestHandler(t, cfg)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				restored, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, body, restored)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewReader(body))
			if tt.header != "" {
				req.Header.Set(utils.HashHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.verifyBodyHash(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestVerifyBodyHash_WiredOnAdminWrites(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.App.HashKey = testHashKey
	h, m := newTestHandler(t, cfg)
	m.expectAdmin()

	body, err := json.Marshal(models.Category{Name: "Lore"})
	require.NoError(t, err)
	header := adminHeader()
	header.Set(utils.HashHeader, "00")

	rec := serve(h, http.MethodPost, "/api/admin/categories", body, header)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrIntegrityCheckFailed.Error(), decodeBody[utils.ErrorResponse](t, rec).Error)
}

// ── trace id ──

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "propagated", incoming: "trace-123"},
		{name: "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.New(&logs, "test"))

			var fromCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = utils.GetTraceIDFromContext(r.Context())
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			echoed := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, echoed)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, echoed)
			}
			assert.Equal(t, echoed, fromCtx)
			assert.Contains(t, logs.String(), `"trace_id":"`+echoed+`"`)
		})
	}
}

// ── logging ──

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var logs bytes.Buffer
	l := logger.New(&logs, "test")
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("12345"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit?secret=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &line))
	assert.Equal(t, "/api/quiz/submit", line["path"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusAccepted, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.NotContains(t, logs.String(), "secret")
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("ok"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, 2, rw.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = rw.Write([]byte("abc"))

	assert.Equal(t, http.StatusOK, rw.status)
}

// ── method check ──

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		wantStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusNotFound},
		{http.MethodDelete, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/categories", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	rec := serve(h, http.MethodGet, "/api/quiz/start", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodPatch, "/api/admin/questions/q1", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_RequestTimeoutApplied(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.Server.RequestTimeout = time.Minute
	h, m := newTestHandler(t, cfg)
	m.categories.EXPECT().ListCategories(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Category, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return nil, nil
	})

	rec := serve(h, http.MethodGet, "/api/categories", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
