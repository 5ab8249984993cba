package handler

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

// UseCase is any action that turns a payload into a result.
type UseCase[T any] interface {
	Execute(ctx context.Context, payload domain.Payload) (T, error)
}

// Command is a UseCase without a result.
type Command interface {
	Execute(ctx context.Context, payload domain.Payload) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// UseCases lists every action exposed over HTTP.
type UseCases struct {
	AddUser               UseCase[domain.RegisteredUser]
	LoginUser             UseCase[domain.NewAuth]
	RefreshAuthentication UseCase[string]
	LogoutUser            Command

	AddThread       UseCase[domain.AddedThread]
	GetDetailThread UseCase[domain.DetailThread]
	AddComment      UseCase[domain.AddedComment]
	DeleteComment   Command
	AddReply        UseCase[domain.AddedReply]
	DeleteReply     Command
	ToggleLike      UseCase[domain.LikeToggle]
}

type Handler struct {
	uc     UseCases
	health Pinger
}

func New(uc UseCases, health Pinger) *Handler {
	return &Handler{uc: uc, health: health}
}
