package identity

import "github.com/google/uuid"

// TokenSource draws random identifiers with negligible collision probability.
type TokenSource interface {
	NewToken() string
}

// UUIDTokens renders random (version 4) UUIDs as text.
type UUIDTokens struct{}

// NewToken returns a fresh random UUID string.
func (UUIDTokens) NewToken() string {
	return uuid.NewString()
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

// NewToken calls f.
func (f TokenFunc) NewToken() string { return f() }

var _ TokenSource = UUIDTokens{}
