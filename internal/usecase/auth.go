package usecase

import (
	"context"

	"github.com/itchan-dev/forumapi/internal/domain"
)

type LoginUserUseCase struct {
	users  UserRepository
	auths  AuthenticationRepository
	tokens TokenManager
	hash   PasswordHash
}

func NewLoginUserUseCase(users UserRepository, auths AuthenticationRepository, tokens TokenManager, hash PasswordHash) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, auths: auths, tokens: tokens, hash: hash}
}

func (u *LoginUserUseCase) Execute(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	login, err := domain.ParseUserLogin(payload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	encrypted, err := u.users.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := u.hash.ComparePassword(login.Password, encrypted); err != nil {
		return domain.NewAuth{}, err
	}

	id, err := u.users.GetIdByUsername(ctx, login.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}

	tokenPayload := domain.TokenPayload{Id: id, Username: login.Username}
	accessToken, err := u.tokens.CreateAccessToken(tokenPayload)
	if err != nil {
		return domain.NewAuth{}, err
	}
	refreshToken, err := u.tokens.CreateRefreshToken(tokenPayload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	if err := u.auths.AddToken(ctx, refreshToken); err != nil {
		return domain.NewAuth{}, err
	}
	return domain.NewAuth{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

type RefreshAuthenticationUseCase struct {
	auths  AuthenticationRepository
	tokens TokenManager
}

func NewRefreshAuthenticationUseCase(auths AuthenticationRepository, tokens TokenManager) *RefreshAuthenticationUseCase {
	return &RefreshAuthenticationUseCase{auths: auths, tokens: tokens}
}

// Execute returns a fresh access token for a stored, valid refresh token.
func (u *RefreshAuthenticationUseCase) Execute(ctx context.Context, payload domain.Payload) (string, error) {
	refreshToken, err := domain.ParseRefreshToken("REFRESH_AUTHENTICATION_USE_CASE", payload)
	if err != nil {
		return "", err
	}
	if err := u.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return "", err
	}
	if err := u.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}
	tokenPayload, err := u.tokens.DecodePayload(refreshToken)
	if err != nil {
		return "", err
	}
	return u.tokens.CreateAccessToken(tokenPayload)
}

type LogoutUserUseCase struct {
	auths AuthenticationRepository
}

func NewLogoutUserUseCase(auths AuthenticationRepository) *LogoutUserUseCase {
	return &LogoutUserUseCase{auths: auths}
}

func (u *LogoutUserUseCase) Execute(ctx context.Context, payload domain.Payload) error {
	refreshToken, err := domain.ParseRefreshToken("DELETE_AUTHENTICATION_USE_CASE", payload)
	if err != nil {
		return err
	}
	if err := u.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return u.auths.DeleteToken(ctx, refreshToken)
}
