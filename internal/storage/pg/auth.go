package pg

import (
	"context"
	"fmt"

	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

// Refresh tokens issued at login. A token absent from this table is revoked.

func (s *Storage) AddToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "INSERT INTO authentications(token) VALUES($1)", token); err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(ctx context.Context, token string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM authentications WHERE token = $1)", token).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check token: %w", err)
	}
	if !exists {
		return internal_errors.Invariant("refresh token tidak ditemukan di database")
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
