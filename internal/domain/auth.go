package domain

import (
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPayload is what access and refresh tokens carry.
type TokenPayload struct {
	Id       string
	Username string
}

// ParseRefreshToken extracts the refresh token sent to the use case named
// entity, e.g. REFRESH_AUTHENTICATION_USE_CASE.
func ParseRefreshToken(entity string, p Payload) (string, error) {
	v := p["refreshToken"]
	if empty(v) {
		return "", internal_errors.Validation(entity, internal_errors.NotContainRefreshToken)
	}
	token, ok := v.(string)
	if !ok {
		return "", internal_errors.Validation(entity, internal_errors.PayloadNotMeetDataTypeSpecification)
	}
	return token, nil
}
