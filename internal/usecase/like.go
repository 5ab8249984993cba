package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var likeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forum_like_toggles_total",
		Help: "Number of comment like toggles by resulting direction",
	},
	[]string{"direction"},
)

type ToggleLikeCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
	likes    LikeRepository
}

func NewToggleLikeCommentUseCase(threads ThreadRepository, comments CommentRepository, likes LikeRepository) *ToggleLikeCommentUseCase {
	return &ToggleLikeCommentUseCase{threads: threads, comments: comments, likes: likes}
}

func (u *ToggleLikeCommentUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.LikeToggle, error) {
	threadId := str(payload, "threadId")

	if err := u.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return domain.LikeToggle{}, err
	}
	if err := u.comments.CheckCommentIsExist(ctx, threadId, str(payload, "commentId")); err != nil {
		return domain.LikeToggle{}, err
	}
	newLike, err := domain.ParseNewLike(payload)
	if err != nil {
		return domain.LikeToggle{}, err
	}
	toggle, err := u.likes.ToggleLike(ctx, newLike)
	if err != nil {
		return domain.LikeToggle{}, err
	}

	direction := "like"
	if toggle.Index == domain.LikeRemoved {
		direction = "unlike"
	}
	likeTogglesTotal.WithLabelValues(direction).Inc()
	return toggle, nil
}
