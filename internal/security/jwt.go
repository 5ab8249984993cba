package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"github.com/itchan-dev/forumapi/internal/logger"
)

// JwtTokenManager signs access and refresh tokens with separate HS256 keys.
type JwtTokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJwtTokenManager creates a token manager. A zero refreshTTL issues refresh
// tokens without expiry; they are revoked through the token store instead.
func NewJwtTokenManager(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *JwtTokenManager {
	return &JwtTokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (j *JwtTokenManager) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.accessKey, j.accessTTL)
}

func (j *JwtTokenManager) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.refreshKey, j.refreshTTL)
}

func (j *JwtTokenManager) VerifyRefreshToken(token string) error {
	if _, err := j.parse(token, j.refreshKey); err != nil {
		return internal_errors.Invariant("refresh token tidak valid")
	}
	return nil
}

// VerifyAccessToken checks signature and expiry of an access token and
// returns what it carries.
func (j *JwtTokenManager) VerifyAccessToken(token string) (domain.TokenPayload, error) {
	claims, err := j.parse(token, j.accessKey)
	if err != nil {
		return domain.TokenPayload{}, internal_errors.Authentication("Invalid token")
	}
	return payloadFromClaims(claims)
}

// DecodePayload reads the claims of a refresh token without checking the
// signature. Call VerifyRefreshToken first.
func (j *JwtTokenManager) DecodePayload(token string) (domain.TokenPayload, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.TokenPayload{}, internal_errors.Invariant("refresh token tidak valid")
	}
	return payloadFromClaims(claims)
}

func (j *JwtTokenManager) sign(payload domain.TokenPayload, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	claims["id"] = payload.Id
	claims["username"] = payload.Username
	claims["iat"] = now.Unix()
	claims["jti"] = uuid.NewString() // tokens issued within one second must still differ
	if ttl != 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}
	return tokenString, nil
}

func (j *JwtTokenManager) parse(tokenString string, key []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func payloadFromClaims(claims jwt.MapClaims) (domain.TokenPayload, error) {
	id, okId := claims["id"].(string)
	username, okUsername := claims["username"].(string)
	if !okId || !okUsername || id == "" {
		return domain.TokenPayload{}, internal_errors.Authentication("Invalid token")
	}
	return domain.TokenPayload{Id: id, Username: username}, nil
}
