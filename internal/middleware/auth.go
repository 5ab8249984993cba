package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"github.com/itchan-dev/forumapi/internal/logger"
	"github.com/itchan-dev/forumapi/internal/utils"
)

// AccessTokenVerifier validates an access token and returns its payload.
type AccessTokenVerifier interface {
	VerifyAccessToken(token string) (domain.TokenPayload, error)
}

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// UserClaims is what authenticated handlers read from the context.
type UserClaims struct {
	Id       string `validate:"required,max=50"`
	Username string `validate:"required,max=50"`
}

type Auth struct {
	tokens AccessTokenVerifier
}

func NewAuth(tokens AccessTokenVerifier) *Auth {
	return &Auth{tokens: tokens}
}

// NeedAuth rejects requests without a valid bearer access token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				utils.WriteErrorAndStatusCode(w, r, internal_errors.Authentication("Missing authentication"))
				return
			}

			payload, err := a.tokens.VerifyAccessToken(tokenString)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, r, err)
				return
			}

			claims := &UserClaims{Id: payload.Id, Username: payload.Username}
			if err := utils.Validate(claims); err != nil {
				logger.Log.Warn("invalid token claims", "path", r.URL.Path, "error", err)
				utils.WriteErrorAndStatusCode(w, r, internal_errors.Authentication("Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the claims stored by NeedAuth, or nil.
func GetUserFromContext(r *http.Request) *UserClaims {
	claims, _ := r.Context().Value(UserClaimsKey).(*UserClaims)
	return claims
}
