package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forumapi/internal/config"
	"github.com/itchan-dev/forumapi/internal/handler"
	"github.com/itchan-dev/forumapi/internal/middleware"
	"github.com/itchan-dev/forumapi/internal/middleware/ratelimiter"
	"github.com/itchan-dev/forumapi/internal/security"
	"github.com/itchan-dev/forumapi/internal/storage/memory"
	"github.com/itchan-dev/forumapi/internal/storage/pg"
	"github.com/itchan-dev/forumapi/internal/usecase"
)

// Storage is what a backend has to provide to run the forum.
type Storage interface {
	usecase.ThreadRepository
	usecase.CommentRepository
	usecase.ReplyRepository
	usecase.LikeRepository
	usecase.UserRepository
	usecase.AuthenticationRepository
	Ping(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	// nil when auth rate limiting is disabled
	AuthRateLimiter *ratelimiter.KeyedRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Wire(cfg, storage), nil
}

func newStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StoragePostgres:
		storage, err := pg.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Public.Storage)
	}
}

// Wire builds use cases, handler and middleware on top of storage.
func Wire(cfg *config.Config, storage Storage) *Dependencies {
	tokens := security.NewJwtTokenManager(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.Public.AccessTTL, cfg.Public.RefreshTTL)
	hash := security.NewBcryptPasswordHash(cfg.Public.BcryptCost)

	h := handler.New(handler.UseCases{
		AddUser:               usecase.NewAddUserUseCase(storage, hash),
		LoginUser:             usecase.NewLoginUserUseCase(storage, storage, tokens, hash),
		RefreshAuthentication: usecase.NewRefreshAuthenticationUseCase(storage, tokens),
		LogoutUser:            usecase.NewLogoutUserUseCase(storage),

		AddThread:       usecase.NewAddThreadUseCase(storage),
		GetDetailThread: usecase.NewGetDetailThreadUseCase(storage, storage, storage, storage, cfg.Public.LikeCountConcurrency),
		AddComment:      usecase.NewAddCommentUseCase(storage, storage),
		DeleteComment:   usecase.NewDeleteCommentUseCase(storage, storage),
		AddReply:        usecase.NewAddReplyUseCase(storage, storage, storage),
		DeleteReply:     usecase.NewDeleteReplyUseCase(storage, storage, storage),
		ToggleLike:      usecase.NewToggleLikeCommentUseCase(storage, storage, storage),
	}, storage)

	deps := &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
	}
	if n := cfg.Public.AuthRateLimitPerMinute; n > 0 {
		deps.AuthRateLimiter = ratelimiter.PerMinute(n)
	}
	return deps
}

// Close releases the storage and background timers.
func (d *Dependencies) Close() error {
	if d.AuthRateLimiter != nil {
		d.AuthRateLimiter.Stop()
	}
	return d.Storage.Cleanup()
}
