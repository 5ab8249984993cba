package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultLikeCountConcurrency = 4

// GetDetailThreadUseCase assembles a thread with its comments, replies and like
// counts. Replies are fetched once per thread and re-attached to their comment
// in memory.
type GetDetailThreadUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
	likes    LikeRepository

	likeCountConcurrency int
}

// NewGetDetailThreadUseCase creates the aggregator. likeCountConcurrency bounds
// the number of like count lookups in flight; values below 1 use a default.
func NewGetDetailThreadUseCase(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, likes LikeRepository, likeCountConcurrency int) *GetDetailThreadUseCase {
	if likeCountConcurrency < 1 {
		likeCountConcurrency = defaultLikeCountConcurrency
	}
	return &GetDetailThreadUseCase{
		threads:              threads,
		comments:             comments,
		replies:              replies,
		likes:                likes,
		likeCountConcurrency: likeCountConcurrency,
	}
}

func (u *GetDetailThreadUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.DetailThread, error) {
	threadId := str(payload, "threadId")

	// Doubles as the existence check: NotFound before anything else is read.
	thread, err := u.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := u.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	replies, err := u.replies.GetRepliesByThreadId(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}
	// GroupBy keeps the relative (date) order inside every group.
	repliesByComment := lo.GroupBy(replies, func(r domain.ReplyRecord) string {
		return r.CommentId
	})

	likeCounts, err := u.likeCounts(ctx, comments)
	if err != nil {
		return domain.DetailThread{}, err
	}

	detailComments := make([]domain.DetailComment, 0, len(comments))
	for i, c := range comments {
		detailReplies := make([]domain.DetailReply, 0, len(repliesByComment[c.Id]))
		for _, r := range repliesByComment[c.Id] {
			detailReply, err := domain.NewDetailReply(r)
			if err != nil {
				return domain.DetailThread{}, err
			}
			detailReplies = append(detailReplies, detailReply)
		}

		detailComment, err := domain.NewDetailComment(c, detailReplies, likeCounts[i])
		if err != nil {
			return domain.DetailThread{}, err
		}
		detailComments = append(detailComments, detailComment)
	}

	return domain.NewDetailThread(thread, detailComments)
}

// likeCounts returns counts aligned by index with comments.
func (u *GetDetailThreadUseCase) likeCounts(ctx context.Context, comments []domain.CommentRecord) ([]int, error) {
	counts := make([]int, len(comments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.likeCountConcurrency)
	for i, c := range comments {
		g.Go(func() error {
			n, err := u.likes.GetLikeCountByCommentId(gctx, c.Id)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
