package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://oauth2.googleapis.com", 5*time.Second)
//	resp, err := client.R().SetQueryParam("id_token", raw).Get("/tokeninfo")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL. A positive timeout
// bounds every request made through the client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
