package domain

import (
	"regexp"
	"unicode/utf8"

	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

const maxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^[\w]+$`)

type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func ParseRegisterUser(p Payload) (RegisterUser, error) {
	f, err := p.strings("REGISTER_USER", "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}
	username := f["username"]
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return RegisterUser{}, internal_errors.Validation("REGISTER_USER", internal_errors.UsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, internal_errors.Validation("REGISTER_USER", internal_errors.UsernameContainRestrictedCharacter)
	}
	return RegisterUser{Username: username, Password: f["password"], Fullname: f["fullname"]}, nil
}

type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewRegisteredUser(id, username, fullname string) (RegisteredUser, error) {
	if err := requireNonEmpty("REGISTERED_USER", id, username, fullname); err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{Id: id, Username: username, Fullname: fullname}, nil
}

type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p Payload) (UserLogin, error) {
	f, err := p.strings("LOGIN_USER", "username", "password")
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: f["username"], Password: f["password"]}, nil
}
