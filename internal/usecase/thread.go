package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

type AddThreadUseCase struct {
	threads ThreadRepository
}

func NewAddThreadUseCase(threads ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads}
}

func (u *AddThreadUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return u.threads.AddThread(ctx, newThread)
}
