package gateway

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/halcyonpay/payctl/internal/errors"
)

// tokenPath is the gateway's OAuth2 token endpoint, relative to the base URL.
const tokenPath = "/oauth2/token"

// defaultTokenLifetime is assumed when the gateway omits expires_in.
const defaultTokenLifetime = 15 * time.Minute

// AuthResult is the outcome of a successful client-credentials grant.
type AuthResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// Authenticate performs the OAuth2 client-credentials grant against the
// gateway's token endpoint. On success the client is primed with the new
// token for subsequent requests. Credentials are never persisted here.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret string) (*AuthResult, error) {
	if clientID == "" {
		return nil, errors.NewCredentialsUnsetError("client_id")
	}
	if clientSecret == "" {
		return nil, errors.NewCredentialsUnsetError("client_secret")
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.BaseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	// Route the grant through this client's transport so timeouts apply.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)

	c.logger.Debug("requesting access token", "token_url", conf.TokenURL)

	tok, err := conf.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if stderrors.As(err, &retrieveErr) {
			return nil, errors.Wrap(errors.ErrCodeAuthFailed,
				fmt.Sprintf("gateway rejected the credentials (status %d)", retrieveErr.Response.StatusCode), err).
				WithSuggestion("Verify PAYCTL_CLIENT_ID and PAYCTL_CLIENT_SECRET").
				WithSuggestion("Check that the credentials are enabled for this environment")
		}
		return nil, errors.Wrap(errors.ErrCodeGatewayRequest, "failed to reach the token endpoint", err).
			WithSuggestion("Check network connectivity and the configured API URL")
	}

	expiresIn := defaultTokenLifetime
	if !tok.Expiry.IsZero() {
		expiresIn = time.Until(tok.Expiry)
	}

	c.SetToken(tok.AccessToken)

	c.logger.Debug("access token obtained", "expires_in", expiresIn.Round(time.Second))

	return &AuthResult{
		AccessToken: tok.AccessToken,
		TokenType:   tok.Type(),
		ExpiresIn:   expiresIn,
	}, nil
}
