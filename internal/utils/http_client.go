package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so adapters get the full resty request API
// while transport defaults stay in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client tuned for talking to the image
// host: responses in the 5xx range and transport-level failures are retried
// twice with resty's default backoff. Base URL and timeout are layered on by
// the caller.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}
