package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

type AddUserUseCase struct {
	users UserRepository
	hash  PasswordHash
}

func NewAddUserUseCase(users UserRepository, hash PasswordHash) *AddUserUseCase {
	return &AddUserUseCase{users: users, hash: hash}
}

func (u *AddUserUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	registerUser, err := domain.ParseRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := u.users.VerifyAvailableUsername(ctx, registerUser.Username); err != nil {
		return domain.RegisteredUser{}, err
	}
	registerUser.Password, err = u.hash.Hash(registerUser.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	return u.users.AddUser(ctx, registerUser)
}
