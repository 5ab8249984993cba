package domain

import (
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
)

// Payload is a loosely typed request body, as decoded from JSON.
type Payload map[string]any

// empty mirrors what a client considers "not sent": absent, null, zero or blank.
func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	}
	return false
}

// strings extracts the required string fields of an entity. Presence of every
// field is checked before any type is.
func (p Payload) strings(entity string, keys ...string) (map[string]string, error) {
	for _, k := range keys {
		if empty(p[k]) {
			return nil, internal_errors.Validation(entity, internal_errors.NotContainNeededProperty)
		}
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, internal_errors.Validation(entity, internal_errors.NotMeetDataTypeSpecification)
		}
		out[k] = s
	}
	return out, nil
}

// optionalString returns the field when it is a string, "" when it is absent.
func (p Payload) optionalString(entity, key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", internal_errors.Validation(entity, internal_errors.NotMeetDataTypeSpecification)
	}
	return s, nil
}

func requireNonEmpty(entity string, values ...string) error {
	for _, v := range values {
		if v == "" {
			return internal_errors.Validation(entity, internal_errors.NotContainNeededProperty)
		}
	}
	return nil
}
