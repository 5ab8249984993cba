package domain

type NewLike struct {
	CommentId string
	Owner     string
}

func ParseNewLike(p Payload) (NewLike, error) {
	f, err := p.strings("NEW_LIKE", "commentId", "owner")
	if err != nil {
		return NewLike{}, err
	}
	return NewLike{CommentId: f["commentId"], Owner: f["owner"]}, nil
}

// Direction of a toggle.
const (
	LikeAdded   = 1
	LikeRemoved = -1
)

// LikeToggle is the result of flipping a like: Index is LikeAdded or
// LikeRemoved, Id the like record that was inserted or removed.
type LikeToggle struct {
	Index int    `json:"index"`
	Id    string `json:"id"`
}
