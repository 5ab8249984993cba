package usecase

import (
	"context"
	"sync"

	"github.com/itchan-dev/forumapi/internal/domain"
)

// --- Mocks ---
//
// Every mock embeds the matching Unimplemented* repository. A nil func field
// falls through to it, so calling a method the test did not expect fails with
// ErrNotImplemented instead of silently succeeding.

// callLog records method calls across mocks so tests can assert check order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type MockThreadRepository struct {
	UnimplementedThreadRepository
	log *callLog

	addThreadFunc                func(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	getThreadByIdFunc            func(ctx context.Context, id string) (domain.ThreadRecord, error)
	verifyThreadAvailabilityFunc func(ctx context.Context, id string) error
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.add("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(ctx, thread)
	}
	return m.UnimplementedThreadRepository.AddThread(ctx, thread)
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error) {
	m.log.add("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(ctx, id)
	}
	return m.UnimplementedThreadRepository.GetThreadById(ctx, id)
}

func (m *MockThreadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	m.log.add("VerifyThreadAvailability")
	if m.verifyThreadAvailabilityFunc != nil {
		return m.verifyThreadAvailabilityFunc(ctx, id)
	}
	return m.UnimplementedThreadRepository.VerifyThreadAvailability(ctx, id)
}

type MockCommentRepository struct {
	UnimplementedCommentRepository
	log *callLog

	addCommentFunc            func(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	getCommentsByThreadIdFunc func(ctx context.Context, threadId string) ([]domain.CommentRecord, error)
	checkCommentIsExistFunc   func(ctx context.Context, threadId, commentId string) error
	checkCommentIsActiveFunc  func(ctx context.Context, threadId, commentId string) error
	verifyCommentAccessFunc   func(ctx context.Context, commentId, ownerId string) error
	deleteCommentByIdFunc     func(ctx context.Context, id string) error
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.log.add("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, comment)
	}
	return m.UnimplementedCommentRepository.AddComment(ctx, comment)
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	m.log.add("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(ctx, threadId)
	}
	return m.UnimplementedCommentRepository.GetCommentsByThreadId(ctx, threadId)
}

func (m *MockCommentRepository) CheckCommentIsExist(ctx context.Context, threadId, commentId string) error {
	m.log.add("CheckCommentIsExist")
	if m.checkCommentIsExistFunc != nil {
		return m.checkCommentIsExistFunc(ctx, threadId, commentId)
	}
	return m.UnimplementedCommentRepository.CheckCommentIsExist(ctx, threadId, commentId)
}

func (m *MockCommentRepository) CheckCommentIsActive(ctx context.Context, threadId, commentId string) error {
	m.log.add("CheckCommentIsActive")
	if m.checkCommentIsActiveFunc != nil {
		return m.checkCommentIsActiveFunc(ctx, threadId, commentId)
	}
	return m.UnimplementedCommentRepository.CheckCommentIsActive(ctx, threadId, commentId)
}

func (m *MockCommentRepository) VerifyCommentAccess(ctx context.Context, commentId, ownerId string) error {
	m.log.add("VerifyCommentAccess")
	if m.verifyCommentAccessFunc != nil {
		return m.verifyCommentAccessFunc(ctx, commentId, ownerId)
	}
	return m.UnimplementedCommentRepository.VerifyCommentAccess(ctx, commentId, ownerId)
}

func (m *MockCommentRepository) DeleteCommentById(ctx context.Context, id string) error {
	m.log.add("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(ctx, id)
	}
	return m.UnimplementedCommentRepository.DeleteCommentById(ctx, id)
}

type MockReplyRepository struct {
	UnimplementedReplyRepository
	log *callLog

	addReplyFunc              func(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error)
	getRepliesByCommentIdFunc func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error)
	getRepliesByThreadIdFunc  func(ctx context.Context, threadId string) ([]domain.ReplyRecord, error)
	checkReplyIsExistFunc     func(ctx context.Context, threadId, commentId, replyId string) error
	verifyReplyAccessFunc     func(ctx context.Context, replyId, ownerId string) error
	deleteReplyByIdFunc       func(ctx context.Context, id string) error
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	m.log.add("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, reply)
	}
	return m.UnimplementedReplyRepository.AddReply(ctx, reply)
}

func (m *MockReplyRepository) GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
	m.log.add("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(ctx, commentId)
	}
	return m.UnimplementedReplyRepository.GetRepliesByCommentId(ctx, commentId)
}

func (m *MockReplyRepository) GetRepliesByThreadId(ctx context.Context, threadId string) ([]domain.ReplyRecord, error) {
	m.log.add("GetRepliesByThreadId")
	if m.getRepliesByThreadIdFunc != nil {
		return m.getRepliesByThreadIdFunc(ctx, threadId)
	}
	return m.UnimplementedReplyRepository.GetRepliesByThreadId(ctx, threadId)
}

func (m *MockReplyRepository) CheckReplyIsExist(ctx context.Context, threadId, commentId, replyId string) error {
	m.log.add("CheckReplyIsExist")
	if m.checkReplyIsExistFunc != nil {
		return m.checkReplyIsExistFunc(ctx, threadId, commentId, replyId)
	}
	return m.UnimplementedReplyRepository.CheckReplyIsExist(ctx, threadId, commentId, replyId)
}

func (m *MockReplyRepository) VerifyReplyAccess(ctx context.Context, replyId, ownerId string) error {
	m.log.add("VerifyReplyAccess")
	if m.verifyReplyAccessFunc != nil {
		return m.verifyReplyAccessFunc(ctx, replyId, ownerId)
	}
	return m.UnimplementedReplyRepository.VerifyReplyAccess(ctx, replyId, ownerId)
}

func (m *MockReplyRepository) DeleteReplyById(ctx context.Context, id string) error {
	m.log.add("DeleteReplyById")
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(ctx, id)
	}
	return m.UnimplementedReplyRepository.DeleteReplyById(ctx, id)
}

type MockLikeRepository struct {
	UnimplementedLikeRepository
	log *callLog

	toggleLikeFunc              func(ctx context.Context, like domain.NewLike) (domain.LikeToggle, error)
	getLikeCountByCommentIdFunc func(ctx context.Context, commentId string) (int, error)
}

func (m *MockLikeRepository) ToggleLike(ctx context.Context, like domain.NewLike) (domain.LikeToggle, error) {
	m.log.add("ToggleLike")
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, like)
	}
	return m.UnimplementedLikeRepository.ToggleLike(ctx, like)
}

// Like counts are read concurrently, so they stay out of the call log.
func (m *MockLikeRepository) GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error) {
	if m.getLikeCountByCommentIdFunc != nil {
		return m.getLikeCountByCommentIdFunc(ctx, commentId)
	}
	return m.UnimplementedLikeRepository.GetLikeCountByCommentId(ctx, commentId)
}

type MockUserRepository struct {
	UnimplementedUserRepository
	log *callLog

	addUserFunc                 func(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	verifyAvailableUsernameFunc func(ctx context.Context, username string) error
	getPasswordByUsernameFunc   func(ctx context.Context, username string) (string, error)
	getIdByUsernameFunc         func(ctx context.Context, username string) (string, error)
}

func (m *MockUserRepository) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.log.add("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(ctx, user)
	}
	return m.UnimplementedUserRepository.AddUser(ctx, user)
}

func (m *MockUserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	m.log.add("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(ctx, username)
	}
	return m.UnimplementedUserRepository.VerifyAvailableUsername(ctx, username)
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	m.log.add("GetPasswordByUsername")
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(ctx, username)
	}
	return m.UnimplementedUserRepository.GetPasswordByUsername(ctx, username)
}

func (m *MockUserRepository) GetIdByUsername(ctx context.Context, username string) (string, error) {
	m.log.add("GetIdByUsername")
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(ctx, username)
	}
	return m.UnimplementedUserRepository.GetIdByUsername(ctx, username)
}

type MockAuthenticationRepository struct {
	UnimplementedAuthenticationRepository
	log *callLog

	addTokenFunc               func(ctx context.Context, token string) error
	checkAvailabilityTokenFunc func(ctx context.Context, token string) error
	deleteTokenFunc            func(ctx context.Context, token string) error
}

func (m *MockAuthenticationRepository) AddToken(ctx context.Context, token string) error {
	m.log.add("AddToken")
	if m.addTokenFunc != nil {
		return m.addTokenFunc(ctx, token)
	}
	return m.UnimplementedAuthenticationRepository.AddToken(ctx, token)
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	m.log.add("CheckAvailabilityToken")
	if m.checkAvailabilityTokenFunc != nil {
		return m.checkAvailabilityTokenFunc(ctx, token)
	}
	return m.UnimplementedAuthenticationRepository.CheckAvailabilityToken(ctx, token)
}

func (m *MockAuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	m.log.add("DeleteToken")
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(ctx, token)
	}
	return m.UnimplementedAuthenticationRepository.DeleteToken(ctx, token)
}

// MockPasswordHash defaults to an identity "hash".
type MockPasswordHash struct {
	log *callLog

	hashFunc            func(password string) (string, error)
	comparePasswordFunc func(password, hash string) error
}

func (m *MockPasswordHash) Hash(password string) (string, error) {
	m.log.add("Hash")
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return password, nil
}

func (m *MockPasswordHash) ComparePassword(password, hash string) error {
	m.log.add("ComparePassword")
	if m.comparePasswordFunc != nil {
		return m.comparePasswordFunc(password, hash)
	}
	return nil
}

type MockTokenManager struct {
	log *callLog

	createAccessTokenFunc  func(payload domain.TokenPayload) (string, error)
	createRefreshTokenFunc func(payload domain.TokenPayload) (string, error)
	verifyRefreshTokenFunc func(token string) error
	decodePayloadFunc      func(token string) (domain.TokenPayload, error)
}

func (m *MockTokenManager) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	m.log.add("CreateAccessToken")
	if m.createAccessTokenFunc != nil {
		return m.createAccessTokenFunc(payload)
	}
	return "access-token", nil
}

func (m *MockTokenManager) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	m.log.add("CreateRefreshToken")
	if m.createRefreshTokenFunc != nil {
		return m.createRefreshTokenFunc(payload)
	}
	return "refresh-token", nil
}

func (m *MockTokenManager) VerifyRefreshToken(token string) error {
	m.log.add("VerifyRefreshToken")
	if m.verifyRefreshTokenFunc != nil {
		return m.verifyRefreshTokenFunc(token)
	}
	return nil
}

func (m *MockTokenManager) DecodePayload(token string) (domain.TokenPayload, error) {
	m.log.add("DecodePayload")
	if m.decodePayloadFunc != nil {
		return m.decodePayloadFunc(token)
	}
	return domain.TokenPayload{}, nil
}

// --- Helpers ---

func ok(context.Context, string) error { return nil }

func okComment(context.Context, string, string) error { return nil }
