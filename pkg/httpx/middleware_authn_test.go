package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"microfeed/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func newAuthnServer(t *testing.T) (*jwtx.HS256, http.Handler) {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("authn-test-secret"), "microfeed-test")
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := UsernameFromContext(r.Context())
		require.True(t, ok)
		WriteText(w, http.StatusOK, username)
	})

	return signer, Chain(inner, AuthnMiddleware(signer))
}

func TestAuthnMiddleware_MissingToken(t *testing.T) {
	_, handler := newAuthnServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwdw=="},
		{"bearer with no token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			// Absent token is 401, distinct from present-but-bad (403).
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
		})
	}
}

func TestAuthnMiddleware_InvalidToken(t *testing.T) {
	signer, handler := newAuthnServer(t)

	expired, err := signer.Sign(jwtx.NewSessionClaims(
		"alice", "microfeed-test", time.Minute, time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, err)

	forger, err := jwtx.NewHS256([]byte("wrong-secret"), "microfeed-test")
	require.NoError(t, err)
	forged, err := forger.Sign(jwtx.NewSessionClaims(
		"alice", "microfeed-test", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.jwt"},
		{"expired token", expired},
		{"forged signature", forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestAuthnMiddleware_ValidToken(t *testing.T) {
	signer, handler := newAuthnServer(t)

	token, err := signer.Sign(jwtx.NewSessionClaims(
		"alice", "microfeed-test", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}
