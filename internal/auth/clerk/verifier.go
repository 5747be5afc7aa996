// Package clerk validates session tokens against the Clerk backend API.
package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/port"
)

// Verifier validates Clerk session tokens. The bearer token is a JWT carrying
// the session id in its "sid" claim; verification happens server-side through
// Clerk's sessions/verify endpoint.
type Verifier struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewVerifier creates a Clerk session verifier.
func NewVerifier(cfg *config.AuthConfig) *Verifier {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = "https://api.clerk.com"
	}
	return &Verifier{
		secretKey:  cfg.SecretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sessionResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

func (v *Verifier) VerifySession(ctx context.Context, token string) (*port.SessionClaims, error) {
	sid, err := sessionIDFromToken(token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}

	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, fmt.Errorf("marshaling verify request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/verify", v.baseURL, sid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.secretKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrSessionInvalid
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, domain.ErrSessionInvalid
	}
	if session.Status != "active" {
		return nil, domain.ErrSessionInvalid
	}

	return &port.SessionClaims{
		SessionID: session.ID,
		UserID:    session.UserID,
	}, nil
}

// sessionIDFromToken pulls the "sid" claim out of the JWT without verifying the
// signature; the subsequent API call is what actually authenticates the session.
func sessionIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("token has no sid claim")
	}
	return sid, nil
}

// Compile-time check.
var _ port.SessionVerifier = (*Verifier)(nil)
