package port

import "context"

// SessionClaims is the identity recovered from a verified session token.
type SessionClaims struct {
	SessionID string
	UserID    string
}

// SessionVerifier validates a bearer session token against the auth provider.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*SessionClaims, error)
}
