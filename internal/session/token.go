package session

import "time"

// DefaultSafetyMargin is subtracted from a token's expiry when deciding
// whether it can still back a request, so a token never expires mid-flight.
const DefaultSafetyMargin = 60 * time.Second

// Token is a cached gateway session obtained from a client-credentials
// grant. AccessToken is a secret and must never appear in logs or output.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewToken builds a Token. ExpiresAt is always issuedAt plus expiresIn.
func NewToken(accessToken, tokenType string, issuedAt time.Time, expiresIn time.Duration) Token {
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return Token{
		AccessToken: accessToken,
		TokenType:   tokenType,
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(expiresIn),
	}
}

// UsableAt reports whether the token can still back a request at the given
// time, leaving margin before the actual expiry.
func (t Token) UsableAt(now time.Time, margin time.Duration) bool {
	return now.Before(t.ExpiresAt.Add(-margin))
}

// TTL returns how long the token remains usable from the given time,
// accounting for the margin. Zero or negative means no longer usable.
func (t Token) TTL(now time.Time, margin time.Duration) time.Duration {
	return t.ExpiresAt.Add(-margin).Sub(now)
}
