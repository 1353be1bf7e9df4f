// Package fib talks to the First Iraqi Bank payment gateway.
package fib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/infrastructure/metrics"
	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
	apperrors "github.com/orris-inc/fibgate/internal/shared/errors"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

const (
	ErrMsgMissingCredentials = "missing credentials"
	ErrMsgTokenMissing       = "token missing in response"
	ErrMsgUnknownTokenError  = "Unknown error occurred"

	// oauth2MissingToken is the text x/oauth2 (v0.32.0, internal/token.go) returns when a
	// 2xx token response has no access_token. The library exposes no sentinel for it.
	oauth2MissingToken = "server response missing access_token"
)

// TokenProvider fetches a new client-credentials token for every call. Tokens live for
// about a minute, so nothing is cached between requests.
type TokenProvider struct {
	cfg        *clientcredentials.Config
	httpClient *http.Client
	logger     logger.Interface
}

var _ paymentgateway.TokenProvider = (*TokenProvider)(nil)

// NewTokenProvider builds a provider for the configured environment. Missing credentials
// are reported on first use, not here.
func NewTokenProvider(cfg *sharedConfig.FIBConfig, httpClient *http.Client, logger logger.Interface) *TokenProvider {
	return &TokenProvider{
		cfg: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.GetTokenURL(),
			AuthStyle:    oauth2.AuthStyleInParams,
			EndpointParams: url.Values{
				"grant_type": {cfg.GetGrantType()},
			},
		},
		httpClient: httpClient,
		logger:     logger,
	}
}

// AccessToken performs a single token request. All failures are auth errors.
func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	if p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		metrics.RecordTokenRequest(metrics.TokenResultFailure)
		return "", apperrors.NewAuthError(ErrMsgMissingCredentials)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.cfg.Token(ctx)
	if err != nil {
		metrics.RecordTokenRequest(metrics.TokenResultFailure)
		authErr := p.classify(err)
		p.logger.Warnw("FIB token request failed",
			"token_url", p.cfg.TokenURL,
			"error", authErr,
		)
		return "", authErr
	}

	metrics.RecordTokenRequest(metrics.TokenResultSuccess)
	return token.AccessToken, nil
}

func (p *TokenProvider) classify(err error) *apperrors.AppError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		message := retrieveErr.ErrorCode
		if message == "" {
			message = ErrMsgUnknownTokenError
		}
		status := 0
		statusText := ""
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
			statusText = http.StatusText(status)
		}
		return apperrors.NewAuthError(fmt.Sprintf("%s (%d - %s)", message, status, statusText)).WithCause(err)
	}

	if strings.Contains(err.Error(), oauth2MissingToken) {
		return apperrors.NewAuthError(ErrMsgTokenMissing).WithCause(err)
	}

	return apperrors.NewAuthError("token request failed", err.Error()).WithCause(err)
}
