package jwtx

// Signer is anything that can mint a signed session token from claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}
