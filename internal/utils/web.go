package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forumapi/internal/domain"
	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"github.com/itchan-dev/forumapi/internal/logger"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// response is the envelope every endpoint answers with.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes {"status":"success","data":data}. A nil data is omitted.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, response{Status: "success", Data: data})
}

// WriteErrorAndStatusCode translates err and writes it as a "fail" response
// with its status code. Errors without a status code are logged and hidden
// behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	err = internal_errors.Translate(err)

	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		WriteJSON(w, e.StatusCode, response{Status: "fail", Message: e.Message})
		return
	}

	logger.Log.Error("unexpected error", "method", r.Method, "path", r.URL.Path, "error", err)
	WriteJSON(w, http.StatusInternalServerError, response{Status: "error", Message: "terjadi kegagalan pada server kami"})
}

// DecodePayload reads a JSON object body. An empty body yields an empty payload
// so that missing fields are reported by entity validation.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	err := json.NewDecoder(io.LimitReader(r, maxBodyBytes)).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Log.Debug("invalid json body", "error", err)
		return nil, internal_errors.Invariant("Body is invalid json")
	}
	if payload == nil { // body was "null"
		payload = domain.Payload{}
	}
	return payload, nil
}

// Validate checks a struct against its validate tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		logger.Log.Debug("validation failed", "error", err)
		return internal_errors.Invariant("Required fields missing")
	}
	return nil
}
