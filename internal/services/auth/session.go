package auth

import (
	"context"
	"fmt"
)

// Logout removes the stored session token. It succeeds when none is stored.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.InfoContext(ctx, "session cleared")
	return nil
}

// Status reports whether a session token is stored.
func (s *Service) Status(ctx context.Context) (bool, error) {
	token, ok, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		return false, fmt.Errorf("read session: %w", err)
	}
	return ok && token != "", nil
}
