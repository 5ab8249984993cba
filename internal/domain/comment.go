package domain

import (
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

// DeletedCommentContent replaces the content of a soft deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

type NewComment struct {
	ThreadId string
	Content  string
	Owner    string
}

func ParseNewComment(p Payload) (NewComment, error) {
	f, err := p.strings("NEW_COMMENT", "threadId", "content", "owner")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{ThreadId: f["threadId"], Content: f["content"], Owner: f["owner"]}, nil
}

type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if err := requireNonEmpty("ADDED_COMMENT", id, content, owner); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: id, Content: content, Owner: owner}, nil
}

// CommentRecord is a stored comment joined with its owner's username.
// Content is always the stored content, deleted or not.
type CommentRecord struct {
	Id        string
	ThreadId  string
	Content   string
	Username  string
	Date      string
	IsDeleted bool
}

type DetailComment struct {
	Id        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []DetailReply `json:"replies"`
}

// NewDetailComment projects a stored comment for display. Content of a deleted
// comment is masked here and nowhere else.
func NewDetailComment(c CommentRecord, replies []DetailReply, likeCount int) (DetailComment, error) {
	if err := requireNonEmpty("DETAIL_COMMENT", c.Id, c.Username, c.Content, c.Date); err != nil {
		return DetailComment{}, err
	}
	if replies == nil {
		return DetailComment{}, internal_errors.Validation("DETAIL_COMMENT", internal_errors.NotContainNeededProperty)
	}
	if likeCount < 0 {
		return DetailComment{}, internal_errors.Validation("DETAIL_COMMENT", internal_errors.NotMeetDataTypeSpecification)
	}
	return DetailComment{
		Id:        c.Id,
		Username:  c.Username,
		Date:      c.Date,
		Content:   displayContent(c.Content, c.IsDeleted, DeletedCommentContent),
		LikeCount: likeCount,
		Replies:   replies,
	}, nil
}

func displayContent(stored string, deleted bool, placeholder string) string {
	if deleted {
		return placeholder
	}
	return stored
}
