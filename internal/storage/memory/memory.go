// Package memory keeps every repository in process memory behind one mutex.
// Used for local development and tests that don't need postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02T15:04:05.000Z"

const noAccess = "Anda tidak memiliki izin untuk melakukan aksi ini"

type user struct {
	id, username, password, fullname string
}

type thread struct {
	id, title, body, owner, date string
}

type comment struct {
	id, threadId, content, owner, date string
	deleted                            bool
	seq                                int
}

type reply struct {
	id, commentId, content, owner, date string
	deleted                             bool
	seq                                 int
}

type likeKey struct {
	commentId, owner string
}

type Storage struct {
	mu sync.Mutex

	users    map[string]*user
	tokens   map[string]struct{}
	threads  map[string]*thread
	comments map[string]*comment
	replies  map[string]*reply
	likes    map[likeKey]string // like id
	seq      int

	newId func() string
	now   func() time.Time
}

func New() *Storage {
	return &Storage{
		users:    map[string]*user{},
		tokens:   map[string]struct{}{},
		threads:  map[string]*thread{},
		comments: map[string]*comment{},
		replies:  map[string]*reply{},
		likes:    map[likeKey]string{},
		newId:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *Storage) Ping(context.Context) error { return nil }

func (s *Storage) Cleanup() error { return nil }

// callers hold s.mu
func (s *Storage) id(prefix string) string {
	return prefix + "-" + s.newId()
}

func (s *Storage) date() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *Storage) nextSeq() int {
	s.seq++
	return s.seq
}

func (s *Storage) username(userId string) string {
	if u, ok := s.users[userId]; ok {
		return u.username
	}
	return ""
}

// --- users ---

func (s *Storage) AddUser(_ context.Context, u domain.RegisterUser) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByName(u.Username) != nil {
		return domain.RegisteredUser{}, internal_errors.Invariant("username tidak tersedia")
	}
	stored := &user{id: s.id("user"), username: u.Username, password: u.Password, fullname: u.Fullname}
	s.users[stored.id] = stored
	return domain.NewRegisteredUser(stored.id, stored.username, stored.fullname)
}

func (s *Storage) userByName(username string) *user {
	for _, u := range s.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

func (s *Storage) VerifyAvailableUsername(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByName(username) != nil {
		return internal_errors.Invariant("username tidak tersedia")
	}
	return nil
}

func (s *Storage) GetPasswordByUsername(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userByName(username)
	if u == nil {
		return "", internal_errors.Invariant("username tidak ditemukan")
	}
	return u.password, nil
}

func (s *Storage) GetIdByUsername(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userByName(username)
	if u == nil {
		return "", internal_errors.Invariant("user tidak ditemukan")
	}
	return u.id, nil
}

// --- authentications ---

func (s *Storage) AddToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *Storage) CheckAvailabilityToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; !ok {
		return internal_errors.Invariant("refresh token tidak ditemukan di database")
	}
	return nil
}

func (s *Storage) DeleteToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// --- threads ---

func (s *Storage) AddThread(_ context.Context, t domain.NewThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &thread{id: s.id("thread"), title: t.Title, body: t.Body, owner: t.Owner, date: s.date()}
	s.threads[stored.id] = stored
	return domain.NewAddedThread(stored.id, stored.title, stored.owner)
}

func (s *Storage) GetThreadById(_ context.Context, id string) (domain.ThreadRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[id]
	if !ok {
		return domain.ThreadRecord{}, internal_errors.NotFound("thread tidak ditemukan")
	}
	return domain.ThreadRecord{Id: t.id, Title: t.title, Body: t.body, Date: t.date, Username: s.username(t.owner)}, nil
}

func (s *Storage) VerifyThreadAvailability(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[id]; !ok {
		return internal_errors.NotFound("thread tidak ditemukan")
	}
	return nil
}

// --- comments ---

func (s *Storage) AddComment(_ context.Context, c domain.NewComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &comment{id: s.id("comment"), threadId: c.ThreadId, content: c.Content, owner: c.Owner, date: s.date(), seq: s.nextSeq()}
	s.comments[stored.id] = stored
	return domain.NewAddedComment(stored.id, stored.content, stored.owner)
}

func (s *Storage) GetCommentsByThreadId(_ context.Context, threadId string) ([]domain.CommentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := lo.Filter(lo.Values(s.comments), func(c *comment, _ int) bool {
		return c.threadId == threadId
	})
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].date != matched[j].date {
			return matched[i].date < matched[j].date
		}
		return matched[i].seq < matched[j].seq
	})
	return lo.Map(matched, func(c *comment, _ int) domain.CommentRecord {
		return domain.CommentRecord{
			Id:        c.id,
			ThreadId:  c.threadId,
			Content:   c.content,
			Username:  s.username(c.owner),
			Date:      c.date,
			IsDeleted: c.deleted,
		}
	}), nil
}

func (s *Storage) CheckCommentIsExist(_ context.Context, threadId, commentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[commentId]; !ok || c.threadId != threadId {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

func (s *Storage) CheckCommentIsActive(_ context.Context, threadId, commentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[commentId]; !ok || c.threadId != threadId || c.deleted {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

func (s *Storage) VerifyCommentAccess(_ context.Context, commentId, ownerId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[commentId]; !ok || c.owner != ownerId {
		return internal_errors.Authorization(noAccess)
	}
	return nil
}

func (s *Storage) DeleteCommentById(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return internal_errors.NotFound("tidak dapat menghapus komentar karena komentar tidak ada")
	}
	c.deleted = true
	return nil
}

// --- replies ---

func (s *Storage) AddReply(_ context.Context, r domain.NewReply) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &reply{id: s.id("reply"), commentId: r.CommentId, content: r.Content, owner: r.Owner, date: s.date(), seq: s.nextSeq()}
	s.replies[stored.id] = stored
	return domain.NewAddedReply(stored.id, stored.content, stored.owner)
}

func (s *Storage) GetRepliesByCommentId(_ context.Context, commentId string) ([]domain.ReplyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repliesWhere(func(r *reply) bool { return r.commentId == commentId }), nil
}

func (s *Storage) GetRepliesByThreadId(_ context.Context, threadId string) ([]domain.ReplyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repliesWhere(func(r *reply) bool {
		c, ok := s.comments[r.commentId]
		return ok && c.threadId == threadId
	}), nil
}

func (s *Storage) repliesWhere(keep func(r *reply) bool) []domain.ReplyRecord {
	matched := lo.Filter(lo.Values(s.replies), func(r *reply, _ int) bool { return keep(r) })
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].date != matched[j].date {
			return matched[i].date < matched[j].date
		}
		return matched[i].seq < matched[j].seq
	})
	return lo.Map(matched, func(r *reply, _ int) domain.ReplyRecord {
		return domain.ReplyRecord{
			Id:        r.id,
			CommentId: r.commentId,
			Content:   r.content,
			Username:  s.username(r.owner),
			Date:      r.date,
			IsDeleted: r.deleted,
		}
	})
}

func (s *Storage) CheckReplyIsExist(_ context.Context, threadId, commentId, replyId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.replies[replyId]
	if !ok || r.deleted || r.commentId != commentId {
		return internal_errors.NotFound("balasan tidak ditemukan")
	}
	if c, ok := s.comments[commentId]; !ok || c.threadId != threadId {
		return internal_errors.NotFound("balasan tidak ditemukan")
	}
	return nil
}

func (s *Storage) VerifyReplyAccess(_ context.Context, replyId, ownerId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.replies[replyId]; !ok || r.owner != ownerId {
		return internal_errors.Authorization(noAccess)
	}
	return nil
}

func (s *Storage) DeleteReplyById(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.replies[id]
	if !ok {
		return internal_errors.NotFound("tidak dapat menghapus balasan karena balasan tidak ada")
	}
	r.deleted = true
	return nil
}

// --- likes ---

// ToggleLike checks and flips under the storage mutex.
func (s *Storage) ToggleLike(_ context.Context, like domain.NewLike) (domain.LikeToggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{commentId: like.CommentId, owner: like.Owner}
	if id, ok := s.likes[key]; ok {
		delete(s.likes, key)
		return domain.LikeToggle{Index: domain.LikeRemoved, Id: id}, nil
	}
	id := s.id("like")
	s.likes[key] = id
	return domain.LikeToggle{Index: domain.LikeAdded, Id: id}, nil
}

func (s *Storage) GetLikeCountByCommentId(_ context.Context, commentId string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.CountBy(lo.Keys(s.likes), func(k likeKey) bool { return k.commentId == commentId }), nil
}
