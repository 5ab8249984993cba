package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

type AddCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewAddCommentUseCase(threads ThreadRepository, comments CommentRepository) *AddCommentUseCase {
	return &AddCommentUseCase{threads: threads, comments: comments}
}

func (u *AddCommentUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if err := u.threads.VerifyThreadAvailability(ctx, str(payload, "threadId")); err != nil {
		return domain.AddedComment{}, err
	}
	newComment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return u.comments.AddComment(ctx, newComment)
}

type DeleteCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewDeleteCommentUseCase(threads ThreadRepository, comments CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{threads: threads, comments: comments}
}

// Execute soft deletes a comment. Checks run in a fixed order: thread, comment
// under thread, ownership.
func (u *DeleteCommentUseCase) Execute(ctx context.Context, payload domain.Payload) error {
	threadId := str(payload, "threadId")
	commentId := str(payload, "commentId")

	if err := u.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := u.comments.CheckCommentIsExist(ctx, threadId, commentId); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentAccess(ctx, commentId, str(payload, "owner")); err != nil {
		return err
	}
	return u.comments.DeleteCommentById(ctx, commentId)
}
