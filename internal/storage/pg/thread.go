package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

const threadNotFound = "thread tidak ditemukan"

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	var id, title, owner string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO threads(id, title, body, owner, date) VALUES($1, $2, $3, $4, $5) RETURNING id, title, owner",
		s.id("thread"), thread.Title, thread.Body, thread.Owner, s.date(),
	).Scan(&id, &title, &owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(id, title, owner)
}

func (s *Storage) GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error) {
	var t domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        INNER JOIN users ON threads.owner = users.id
        WHERE threads.id = $1
    `, id).Scan(&t.Id, &t.Title, &t.Body, &t.Date, &t.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, internal_errors.NotFound(threadNotFound)
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, id string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(threadNotFound)
	}
	return nil
}
