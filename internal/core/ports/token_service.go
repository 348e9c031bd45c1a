package ports

import "time"

// TokenPayload carries the identity claims embedded in a bearer token.
// It is derived from a User at login time and never persisted.
type TokenPayload struct {
	Subject   string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs identity claims into a compact bearer token.
type TokenIssuer interface {
	Issue(subject, email, role string) (string, error)
}

// TokenVerifier validates a bearer token and returns the exact payload set
// at issuance. Fails with domain.ErrInvalidToken on a bad signature,
// malformed token, or expiry.
type TokenVerifier interface {
	Verify(token string) (*TokenPayload, error)
}
