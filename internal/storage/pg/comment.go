package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

const noAccess = "Anda tidak memiliki izin untuk melakukan aksi ini"

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	var id, content, owner string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO comments(id, thread_id, content, owner, date) VALUES($1, $2, $3, $4, $5) RETURNING id, content, owner",
		s.id("comment"), comment.ThreadId, comment.Content, comment.Owner, s.date(),
	).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(id, content, owner)
}

// GetCommentsByThreadId returns stored content for deleted comments too;
// masking happens when the detail view is built.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT comments.id, comments.thread_id, comments.content, comments.date, comments.is_deleted, users.username
        FROM comments
        INNER JOIN users ON comments.owner = users.id
        WHERE comments.thread_id = $1
        ORDER BY comments.date ASC, comments.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		var c domain.CommentRecord
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Content, &c.Date, &c.IsDeleted, &c.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) CheckCommentIsExist(ctx context.Context, threadId, commentId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2)",
		commentId, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

func (s *Storage) CheckCommentIsActive(ctx context.Context, threadId, commentId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2 AND is_deleted = FALSE)",
		commentId, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

func (s *Storage) VerifyCommentAccess(ctx context.Context, commentId, ownerId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND owner = $2)",
		commentId, ownerId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment owner: %w", err)
	}
	if !exists {
		return internal_errors.Authorization(noAccess)
	}
	return nil
}

func (s *Storage) DeleteCommentById(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("tidak dapat menghapus komentar karena komentar tidak ada")
	}
	return nil
}
