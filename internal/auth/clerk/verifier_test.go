package clerk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"voxbill/internal/auth/clerk"
	"voxbill/internal/config"
	"voxbill/internal/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	assert.NoError(t, err)
	return token
}

func newVerifier(baseURL string) *clerk.Verifier {
	return clerk.NewVerifier(&config.AuthConfig{
		SecretKey:   "sk_test_123",
		APIBaseURL:  baseURL,
		TimeoutSecs: 5,
	})
}

func TestVerifier_VerifySession_Active(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id": "sess_abc", "user_id": "user_123", "status": "active"}`))
	}))
	defer server.Close()

	token := signedToken(t, jwt.MapClaims{"sid": "sess_abc", "sub": "user_123"})

	claims, err := newVerifier(server.URL).VerifySession(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, "/v1/sessions/sess_abc/verify", gotPath)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "sess_abc", claims.SessionID)
	assert.Equal(t, "user_123", claims.UserID)
}

func TestVerifier_VerifySession_InactiveSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "sess_abc", "user_id": "user_123", "status": "revoked"}`))
	}))
	defer server.Close()

	token := signedToken(t, jwt.MapClaims{"sid": "sess_abc"})

	_, err := newVerifier(server.URL).VerifySession(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestVerifier_VerifySession_APIRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	token := signedToken(t, jwt.MapClaims{"sid": "sess_abc"})

	_, err := newVerifier(server.URL).VerifySession(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestVerifier_VerifySession_NotAJWT(t *testing.T) {
	_, err := newVerifier("http://127.0.0.1:0").VerifySession(context.Background(), "garbage-token")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestVerifier_VerifySession_MissingSidClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user_123"})

	_, err := newVerifier("http://127.0.0.1:0").VerifySession(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}
