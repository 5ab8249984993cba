package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

// Repository contracts consumed by use cases. Lookups that find nothing return
// an errors.NotFound, ownership checks an errors.Authorization.

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error)
	VerifyThreadAvailability(ctx context.Context, id string) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	// GetCommentsByThreadId returns comments ordered by date ascending.
	GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error)
	CheckCommentIsExist(ctx context.Context, threadId, commentId string) error
	// CheckCommentIsActive is CheckCommentIsExist that also treats a soft-deleted comment as missing.
	CheckCommentIsActive(ctx context.Context, threadId, commentId string) error
	VerifyCommentAccess(ctx context.Context, commentId, ownerId string) error
	DeleteCommentById(ctx context.Context, id string) error
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error)
	// GetRepliesByCommentId and GetRepliesByThreadId return replies ordered by date ascending.
	GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error)
	GetRepliesByThreadId(ctx context.Context, threadId string) ([]domain.ReplyRecord, error)
	CheckReplyIsExist(ctx context.Context, threadId, commentId, replyId string) error
	VerifyReplyAccess(ctx context.Context, replyId, ownerId string) error
	DeleteReplyById(ctx context.Context, id string) error
}

type LikeRepository interface {
	// ToggleLike must flip the (comment, owner) like atomically.
	ToggleLike(ctx context.Context, like domain.NewLike) (domain.LikeToggle, error)
	GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error)
}

type UserRepository interface {
	// AddUser stores user, whose Password is already hashed.
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	VerifyAvailableUsername(ctx context.Context, username string) error
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIdByUsername(ctx context.Context, username string) (string, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type PasswordHash interface {
	Hash(password string) (string, error)
	ComparePassword(password, hash string) error
}

type TokenManager interface {
	CreateAccessToken(payload domain.TokenPayload) (string, error)
	CreateRefreshToken(payload domain.TokenPayload) (string, error)
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (domain.TokenPayload, error)
}

// Unimplemented* types satisfy a contract with methods that only return
// errors.ErrNotImplemented. Embed one to surface calls nobody wired.

type UnimplementedThreadRepository struct{}

const threadRepository = "THREAD_REPOSITORY"

func (UnimplementedThreadRepository) AddThread(context.Context, domain.NewThread) (domain.AddedThread, error) {
	return domain.AddedThread{}, internal_errors.NotImplemented(threadRepository)
}

func (UnimplementedThreadRepository) GetThreadById(context.Context, string) (domain.ThreadRecord, error) {
	return domain.ThreadRecord{}, internal_errors.NotImplemented(threadRepository)
}

func (UnimplementedThreadRepository) VerifyThreadAvailability(context.Context, string) error {
	return internal_errors.NotImplemented(threadRepository)
}

type UnimplementedCommentRepository struct{}

const commentRepository = "COMMENT_REPOSITORY"

func (UnimplementedCommentRepository) AddComment(context.Context, domain.NewComment) (domain.AddedComment, error) {
	return domain.AddedComment{}, internal_errors.NotImplemented(commentRepository)
}

func (UnimplementedCommentRepository) GetCommentsByThreadId(context.Context, string) ([]domain.CommentRecord, error) {
	return nil, internal_errors.NotImplemented(commentRepository)
}

func (UnimplementedCommentRepository) CheckCommentIsExist(context.Context, string, string) error {
	return internal_errors.NotImplemented(commentRepository)
}

func (UnimplementedCommentRepository) CheckCommentIsActive(context.Context, string, string) error {
	return internal_errors.NotImplemented(commentRepository)
}

func (UnimplementedCommentRepository) VerifyCommentAccess(context.Context, string, string) error {
	return internal_errors.NotImplemented(commentRepository)
}

func (UnimplementedCommentRepository) DeleteCommentById(context.Context, string) error {
	return internal_errors.NotImplemented(commentRepository)
}

type UnimplementedReplyRepository struct{}

const replyRepository = "REPLY_REPOSITORY"

func (UnimplementedReplyRepository) AddReply(context.Context, domain.NewReply) (domain.AddedReply, error) {
	return domain.AddedReply{}, internal_errors.NotImplemented(replyRepository)
}

func (UnimplementedReplyRepository) GetRepliesByCommentId(context.Context, string) ([]domain.ReplyRecord, error) {
	return nil, internal_errors.NotImplemented(replyRepository)
}

func (UnimplementedReplyRepository) GetRepliesByThreadId(context.Context, string) ([]domain.ReplyRecord, error) {
	return nil, internal_errors.NotImplemented(replyRepository)
}

func (UnimplementedReplyRepository) CheckReplyIsExist(context.Context, string, string, string) error {
	return internal_errors.NotImplemented(replyRepository)
}

func (UnimplementedReplyRepository) VerifyReplyAccess(context.Context, string, string) error {
	return internal_errors.NotImplemented(replyRepository)
}

func (UnimplementedReplyRepository) DeleteReplyById(context.Context, string) error {
	return internal_errors.NotImplemented(replyRepository)
}

type UnimplementedLikeRepository struct{}

const likeRepository = "LIKE_REPOSITORY"

func (UnimplementedLikeRepository) ToggleLike(context.Context, domain.NewLike) (domain.LikeToggle, error) {
	return domain.LikeToggle{}, internal_errors.NotImplemented(likeRepository)
}

func (UnimplementedLikeRepository) GetLikeCountByCommentId(context.Context, string) (int, error) {
	return 0, internal_errors.NotImplemented(likeRepository)
}

type UnimplementedUserRepository struct{}

const userRepository = "USER_REPOSITORY"

func (UnimplementedUserRepository) AddUser(context.Context, domain.RegisterUser) (domain.RegisteredUser, error) {
	return domain.RegisteredUser{}, internal_errors.NotImplemented(userRepository)
}

func (UnimplementedUserRepository) VerifyAvailableUsername(context.Context, string) error {
	return internal_errors.NotImplemented(userRepository)
}

func (UnimplementedUserRepository) GetPasswordByUsername(context.Context, string) (string, error) {
	return "", internal_errors.NotImplemented(userRepository)
}

func (UnimplementedUserRepository) GetIdByUsername(context.Context, string) (string, error) {
	return "", internal_errors.NotImplemented(userRepository)
}

type UnimplementedAuthenticationRepository struct{}

const authenticationRepository = "AUTHENTICATION_REPOSITORY"

func (UnimplementedAuthenticationRepository) AddToken(context.Context, string) error {
	return internal_errors.NotImplemented(authenticationRepository)
}

func (UnimplementedAuthenticationRepository) CheckAvailabilityToken(context.Context, string) error {
	return internal_errors.NotImplemented(authenticationRepository)
}

func (UnimplementedAuthenticationRepository) DeleteToken(context.Context, string) error {
	return internal_errors.NotImplemented(authenticationRepository)
}

var (
	_ ThreadRepository         = UnimplementedThreadRepository{}
	_ CommentRepository        = UnimplementedCommentRepository{}
	_ ReplyRepository          = UnimplementedReplyRepository{}
	_ LikeRepository           = UnimplementedLikeRepository{}
	_ UserRepository           = UnimplementedUserRepository{}
	_ AuthenticationRepository = UnimplementedAuthenticationRepository{}
)

// str reads a path or credential field that use cases need before the payload
// is validated by an entity. Non strings read as "".
func str(p domain.Payload, key string) string {
	s, _ := p[key].(string)
	return s
}
