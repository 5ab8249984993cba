package domain

// DeletedReplyContent replaces the content of a soft deleted reply.
const DeletedReplyContent = "**balasan telah dihapus**"

type NewReply struct {
	ThreadId  string
	CommentId string
	Content   string
	Owner     string
}

// ParseNewReply validates a reply payload. threadId is optional and only
// carried through.
func ParseNewReply(p Payload) (NewReply, error) {
	f, err := p.strings("NEW_REPLY", "commentId", "content", "owner")
	if err != nil {
		return NewReply{}, err
	}
	threadId, err := p.optionalString("NEW_REPLY", "threadId")
	if err != nil {
		return NewReply{}, err
	}
	return NewReply{ThreadId: threadId, CommentId: f["commentId"], Content: f["content"], Owner: f["owner"]}, nil
}

type AddedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if err := requireNonEmpty("ADDED_REPLY", id, content, owner); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: id, Content: content, Owner: owner}, nil
}

type ReplyRecord struct {
	Id        string
	CommentId string
	Content   string
	Username  string
	Date      string
	IsDeleted bool
}

// DetailReply is a reply as shown inside its comment. Association with the
// comment happens on ReplyRecord, so no comment id is carried here.
type DetailReply struct {
	Id       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewDetailReply(r ReplyRecord) (DetailReply, error) {
	if err := requireNonEmpty("DETAIL_REPLY", r.Id, r.CommentId, r.Content, r.Username, r.Date); err != nil {
		return DetailReply{}, err
	}
	return DetailReply{
		Id:       r.Id,
		Content:  displayContent(r.Content, r.IsDeleted, DeletedReplyContent),
		Date:     r.Date,
		Username: r.Username,
	}, nil
}
