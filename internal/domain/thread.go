package domain

import (
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

// NewThread is a validated request to open a thread.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

func ParseNewThread(p Payload) (NewThread, error) {
	f, err := p.strings("NEW_THREAD", "title", "body", "owner")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: f["title"], Body: f["body"], Owner: f["owner"]}, nil
}

type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if err := requireNonEmpty("ADDED_THREAD", id, title, owner); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadRecord is a stored thread joined with its owner's username.
type ThreadRecord struct {
	Id       string
	Title    string
	Body     string
	Date     string
	Username string
}

type DetailThread struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []DetailComment `json:"comments"`
}

func NewDetailThread(t ThreadRecord, comments []DetailComment) (DetailThread, error) {
	if err := requireNonEmpty("DETAIL_THREAD", t.Id, t.Title, t.Body, t.Username, t.Date); err != nil {
		return DetailThread{}, err
	}
	if comments == nil {
		return DetailThread{}, internal_errors.Validation("DETAIL_THREAD", internal_errors.NotContainNeededProperty)
	}
	return DetailThread{
		Id:       t.Id,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}, nil
}
