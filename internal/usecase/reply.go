package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

type AddReplyUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewAddReplyUseCase(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *AddReplyUseCase {
	return &AddReplyUseCase{threads: threads, comments: comments, replies: replies}
}

func (u *AddReplyUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	threadId := str(payload, "threadId")

	if err := u.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	// no new replies under a deleted comment
	if err := u.comments.CheckCommentIsActive(ctx, threadId, str(payload, "commentId")); err != nil {
		return domain.AddedReply{}, err
	}
	newReply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	return u.replies.AddReply(ctx, newReply)
}

type DeleteReplyUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewDeleteReplyUseCase(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{threads: threads, comments: comments, replies: replies}
}

func (u *DeleteReplyUseCase) Execute(ctx context.Context, payload domain.Payload) error {
	threadId := str(payload, "threadId")
	commentId := str(payload, "commentId")
	replyId := str(payload, "replyId")

	if err := u.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := u.comments.CheckCommentIsExist(ctx, threadId, commentId); err != nil {
		return err
	}
	if err := u.replies.CheckReplyIsExist(ctx, threadId, commentId, replyId); err != nil {
		return err
	}
	if err := u.replies.VerifyReplyAccess(ctx, replyId, str(payload, "owner")); err != nil {
		return err
	}
	return u.replies.DeleteReplyById(ctx, replyId)
}
