// Package session owns the bearer credential of the signed-in user.
//
// A Session is constructed once at startup over the durable storage and
// handed to whoever needs the credential: the API client's auth step and the
// navigation guard. Its presence is the only signal of being signed in.
// There is no client-side expiry; a stale token is sent as is and the
// backend decides.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodscreen/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	repo storage.Repository
}

func New(repo storage.Repository) *Session {
	return &Session{repo: repo}
}

// Token returns the stored credential, or "" when there is none.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return string(v), nil
}

// HasCredential reports whether a non-empty credential is stored.
func (s *Session) HasCredential(ctx context.Context) (bool, error) {
	tok, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Username returns the "username" claim of the stored token for display.
// The signature and expiry are deliberately not checked here; an opaque or
// unparsable token just yields "".
func (s *Session) Username(ctx context.Context) string {
	tok, err := s.Token(ctx)
	if err != nil || tok == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return ""
	}

	name, _ := claims["username"].(string)
	return name
}
