package adapter

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/utils"
)

type httpImageHostAdapter struct {
	client *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

// uploadResult is the JSON body the image host returns for a stored object.
// secure_url is preferred when both are present.
type uploadResult struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// NewHTTPImageHostAdapter constructs an HTTP/REST implementation of
// [FileUploader]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPImageHostAdapter(cfg config.Uploads, logger *logger.Logger) (FileUploader, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid image host address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpImageHostAdapter{client: client, apiKey: cfg.APIKey, logger: logger}, nil
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

// Upload implements [FileUploader]. It POSTs the file as a multipart upload to
// POST /upload and returns the public URL reported by the host. The local
// file is left in place; callers remove it once the upload settles.
func (h *httpImageHostAdapter) Upload(ctx context.Context, localPath string) (string, error) {
	if strings.TrimSpace(localPath) == "" {
		return "", ErrEmptyLocalPath
	}

	var result uploadResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", h.apiKey).
		SetFile("file", localPath).
		SetFormData(map[string]string{"filename": filepath.Base(localPath)}).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpImageHostAdapter.Upload").Msg("upload request failed")
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpImageHostAdapter.Upload").Msg("image host returned error status")
		return "", err
	}

	publicURL := result.SecureURL
	if publicURL == "" {
		publicURL = result.URL
	}
	if publicURL == "" {
		return "", ErrEmptyUploadURL
	}

	return publicURL, nil
}
