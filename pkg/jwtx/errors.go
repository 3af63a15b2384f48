package jwtx

import "errors"

var (
	// ErrExpired reports a token past its exp claim.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid reports a token used before its nbf claim.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrIssuer reports an issuer mismatch.
	ErrIssuer = errors.New("jwtx: unexpected issuer")

	// ErrInvalidToken reports a token that is malformed or fails signature
	// verification.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrEmptySecret reports an attempt to construct a signer without key
	// material.
	ErrEmptySecret = errors.New("jwtx: signing secret must not be empty")
)
