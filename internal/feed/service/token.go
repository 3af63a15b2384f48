package service

import (
	"time"

	"microfeed/pkg/jwtx"
)

// TokenService issues session tokens for authenticated identities.
// Verification lives on the jwtx.Verifier wired into the HTTP layer's
// authentication middleware.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue mints a signed token binding the username, expiring TTL from now.
func (s *TokenService) Issue(username string) (string, error) {
	claims := jwtx.NewSessionClaims(username, s.Issuer, s.TTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}
