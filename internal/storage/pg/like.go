package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/domain"
)

// ToggleLike flips the like of (comment, owner) inside one transaction. The
// advisory lock serializes concurrent toggles of the same pair, so two
// requests can't both observe "not liked" and both insert.
func (s *Storage) ToggleLike(ctx context.Context, like domain.NewLike) (domain.LikeToggle, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.LikeToggle{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))",
		like.CommentId, like.Owner,
	); err != nil {
		return domain.LikeToggle{}, fmt.Errorf("failed to lock like: %w", err)
	}

	toggle := domain.LikeToggle{Index: domain.LikeRemoved}
	err = tx.QueryRowContext(ctx,
		"DELETE FROM likes WHERE comment_id = $1 AND owner = $2 RETURNING id",
		like.CommentId, like.Owner,
	).Scan(&toggle.Id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		toggle = domain.LikeToggle{Index: domain.LikeAdded}
		err = tx.QueryRowContext(ctx,
			"INSERT INTO likes(id, comment_id, owner, date) VALUES($1, $2, $3, $4) RETURNING id",
			s.id("like"), like.CommentId, like.Owner, s.date(),
		).Scan(&toggle.Id)
		if err != nil {
			return domain.LikeToggle{}, fmt.Errorf("failed to insert like: %w", err)
		}
	case err != nil:
		return domain.LikeToggle{}, fmt.Errorf("failed to delete like: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.LikeToggle{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return toggle, nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM likes WHERE comment_id = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
