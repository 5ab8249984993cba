package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	var id, username, fullname string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users(id, username, password, fullname) VALUES($1, $2, $3, $4) RETURNING id, username, fullname",
		s.id("user"), user.Username, user.Password, user.Fullname,
	).Scan(&id, &username, &fullname)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(id, username, fullname)
}

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return internal_errors.Invariant("username tidak tersedia")
	}
	return nil
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	var password string
	err := s.db.QueryRowContext(ctx, "SELECT password FROM users WHERE username = $1", username).Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.Invariant("username tidak ditemukan")
		}
		return "", fmt.Errorf("failed to get password: %w", err)
	}
	return password, nil
}

func (s *Storage) GetIdByUsername(ctx context.Context, username string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.Invariant("user tidak ditemukan")
		}
		return "", fmt.Errorf("failed to get user id: %w", err)
	}
	return id, nil
}
