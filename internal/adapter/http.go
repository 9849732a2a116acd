package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher signs admin write bodies; nil without a hash key.
	hasher *utils.Hasher
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. The base URL is normalised (a missing scheme defaults to
// http) and must include a host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		adapter.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. The token comes back in the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Password: password}).
		Post("/api/admin/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.token = token
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Msg("admin token received")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.client.R().SetContext(ctx).SetResult(&categories).Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return categories, nil
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category

	req, err := h.signedRequest(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	resp, err := req.SetResult(&created).Post("/api/admin/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) ListQuestions(ctx context.Context, categoryID int64) ([]models.Question, error) {
	var questions []models.Question

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID != models.AllCategoriesID {
		req.SetQueryParam("category_id", strconv.FormatInt(categoryID, 10))
	}

	resp, err := req.SetResult(&questions).Get("/api/admin/questions")
	if err != nil {
		return nil, fmt.Errorf("list questions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return questions, nil
}

func (h *httpServerAdapter) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	var question models.Question

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Question{}, err
	}
	resp, err := req.SetPathParam("id", id).SetResult(&question).Get("/api/admin/questions/{id}")
	if err != nil {
		return models.Question{}, fmt.Errorf("get question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (h *httpServerAdapter) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	var created models.Question

	req, err := h.signedRequest(ctx, q)
	if err != nil {
		return models.Question{}, err
	}
	resp, err := req.SetResult(&created).Post("/api/admin/questions")
	if err != nil {
		return models.Question{}, fmt.Errorf("create question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Question{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error) {
	var updated models.Question

	req, err := h.signedRequest(ctx, q)
	if err != nil {
		return models.Question{}, err
	}
	resp, err := req.SetPathParam("id", id).SetResult(&updated).Put("/api/admin/questions/{id}")
	if err != nil {
		return models.Question{}, fmt.Errorf("update question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Question{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteQuestion(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Delete("/api/admin/questions/{id}")
	if err != nil {
		return fmt.Errorf("delete question request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetLeaderboard(ctx context.Context, categoryID *int64, limit int) (models.Leaderboard, error) {
	var leaderboard models.Leaderboard

	req := h.client.R().SetContext(ctx).SetResult(&leaderboard)
	if categoryID != nil {
		req.SetQueryParam("category_id", strconv.FormatInt(*categoryID, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/leaderboard")
	if err != nil {
		return models.Leaderboard{}, fmt.Errorf("leaderboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Leaderboard{}, err
	}
	return leaderboard, nil
}

func (h *httpServerAdapter) DeleteScore(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.SetPathParam("id", id).Delete("/api/admin/scores/{id}")
	if err != nil {
		return fmt.Errorf("delete score request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetStatistics(ctx context.Context) (models.Statistics, error) {
	var stats models.Statistics

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Statistics{}, err
	}
	resp, err := req.SetResult(&stats).Get("/api/admin/stats")
	if err != nil {
		return models.Statistics{}, fmt.Errorf("statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Statistics{}, err
	}
	return stats, nil
}

// authedRequest returns a request carrying the admin bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNotLoggedIn
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token), nil
}

// signedRequest is an authed request whose JSON body is pre-serialised so
// the HashSHA256 header covers exactly the bytes sent.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	return req.SetBody(payload), nil
}
