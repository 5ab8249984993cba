package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

func (s *Storage) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	var id, content, owner string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO replies(id, comment_id, content, owner, date) VALUES($1, $2, $3, $4, $5) RETURNING id, content, owner",
		s.id("reply"), reply.CommentId, reply.Content, reply.Owner, s.date(),
	).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(id, content, owner)
}

const selectReplies = `
    SELECT replies.id, replies.comment_id, replies.content, replies.date, replies.is_deleted, users.username
    FROM replies
    INNER JOIN users ON replies.owner = users.id
`

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectReplies+`
        WHERE replies.comment_id = $1
        ORDER BY replies.date ASC, replies.seq ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	return scanReplies(rows)
}

// GetRepliesByThreadId fetches every reply of a thread in one query.
func (s *Storage) GetRepliesByThreadId(ctx context.Context, threadId string) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectReplies+`
        INNER JOIN comments ON replies.comment_id = comments.id
        WHERE comments.thread_id = $1
        ORDER BY replies.date ASC, replies.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	return scanReplies(rows)
}

func scanReplies(rows *sql.Rows) ([]domain.ReplyRecord, error) {
	defer rows.Close()

	replies := []domain.ReplyRecord{}
	for rows.Next() {
		var r domain.ReplyRecord
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Content, &r.Date, &r.IsDeleted, &r.Username); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}
	return replies, nil
}

// CheckReplyIsExist treats an already deleted reply as missing.
func (s *Storage) CheckReplyIsExist(ctx context.Context, threadId, commentId, replyId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
        SELECT EXISTS(
            SELECT 1
            FROM replies
            INNER JOIN comments ON replies.comment_id = comments.id
            WHERE replies.id = $1
            AND replies.comment_id = $2
            AND comments.thread_id = $3
            AND replies.is_deleted = FALSE
        )
    `, replyId, commentId, threadId).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("balasan tidak ditemukan")
	}
	return nil
}

func (s *Storage) VerifyReplyAccess(ctx context.Context, replyId, ownerId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1 AND owner = $2)",
		replyId, ownerId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply owner: %w", err)
	}
	if !exists {
		return internal_errors.Authorization(noAccess)
	}
	return nil
}

func (s *Storage) DeleteReplyById(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("tidak dapat menghapus balasan karena balasan tidak ada")
	}
	return nil
}
