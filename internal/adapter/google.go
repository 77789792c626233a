package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// tokenInfo is the subset of the tokeninfo response the verifier reads.
// Google encodes booleans in this payload as strings.
type tokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type googleVerifier struct {
	client   *utils.HTTPClient
	path     string
	clientID string

	logger *logger.Logger
}

// NewGoogleVerifier constructs a [GoogleVerifier] that checks tokens against
// adapterCfg.GoogleTokenInfoURL and requires their audience to equal
// appCfg.GoogleClientID.
//
// Returns an error if the client id is empty or the URL cannot be parsed as
// an absolute URL.
func NewGoogleVerifier(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (GoogleVerifier, error) {
	if appCfg.GoogleClientID == "" {
		return nil, ErrEmptyClientID
	}
	if strings.TrimSpace(adapterCfg.GoogleTokenInfoURL) == "" {
		return nil, ErrEmptyTokenInfoURL
	}

	parsed, err := url.Parse(strings.TrimSpace(adapterCfg.GoogleTokenInfoURL))
	if err != nil {
		return nil, fmt.Errorf("invalid google token info url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid google token info url: %q", adapterCfg.GoogleTokenInfoURL)
	}

	baseURL := parsed.Scheme + "://" + parsed.Host
	path := parsed.Path
	if path == "" {
		path = "/"
	}

	return &googleVerifier{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		path:     path,
		clientID: appCfg.GoogleClientID,
		logger:   logger,
	}, nil
}

// VerifyIDToken implements [GoogleVerifier]. It GETs the tokeninfo endpoint
// with the id_token query parameter and checks the audience and the
// email_verified flag of the answer.
func (g *googleVerifier) VerifyIDToken(ctx context.Context, idToken string) (models.GoogleIdentity, error) {
	if strings.TrimSpace(idToken) == "" {
		return models.GoogleIdentity{}, ErrEmptyIDToken
	}

	var info tokenInfo
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(&info).
		Get(g.path)
	if err != nil {
		return models.GoogleIdentity{}, fmt.Errorf("token info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Int("status", resp.StatusCode()).Msg("google rejected id token")
		return models.GoogleIdentity{}, err
	}

	if info.Audience != g.clientID {
		logger.FromContext(ctx).Warn().Str("aud", info.Audience).Msg("id token audience mismatch")
		return models.GoogleIdentity{}, ErrAudienceMismatch
	}
	if info.EmailVerified != "true" || info.Email == "" {
		return models.GoogleIdentity{}, ErrEmailNotVerified
	}

	return models.GoogleIdentity{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
