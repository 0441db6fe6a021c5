package auth

import (
	"crypto/hmac"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the entered password does not match.
var ErrUnauthorized = errors.New("invalid password")

// Gate checks the admin credential and tracks issued session tokens.
// Tokens live in process memory with no expiry and are cleared only by
// explicit logout, mirroring the session flag of the original app.
type Gate struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewGate returns an empty Gate.
func NewGate() *Gate {
	return &Gate{tokens: make(map[string]struct{})}
}

// Login compares the entered credential against the document password in
// constant time and issues a bearer token on success.
func (g *Gate) Login(entered, actual string) (string, error) {
	if !hmac.Equal([]byte(entered), []byte(actual)) {
		return "", ErrUnauthorized
	}
	token := uuid.NewString()
	g.mu.Lock()
	g.tokens[token] = struct{}{}
	g.mu.Unlock()
	return token, nil
}

// Authorized reports whether token was issued by Login and not yet logged
// out.
func (g *Gate) Authorized(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.tokens[token]
	return ok
}

// Logout revokes a token. Unknown tokens are ignored.
func (g *Gate) Logout(token string) {
	g.mu.Lock()
	delete(g.tokens, token)
	g.mu.Unlock()
}
