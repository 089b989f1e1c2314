package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/nutritrack/internal/common"
)

// Error codes carried in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeAuth         = "AUTH_ERROR"
	CodeEmailTaken   = "EMAIL_TAKEN"
	CodeNotFound     = "NOT_FOUND"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeUnexpected   = "UNEXPECTED_ERROR"
)

// Envelope is the shape of every response body.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Envelope{Error: &ErrorBody{Code: code, Message: message}})
}

// writeServiceError maps a service error onto status and code. Anything
// unrecognised becomes a 500 with a fixed message so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, CodeValidation, verr.Message)
	case errors.Is(err, common.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, CodeEmailTaken, err.Error())
	case errors.Is(err, common.ErrAccountCreation):
		writeError(w, http.StatusBadRequest, CodeAuth, err.Error())
	case errors.Is(err, common.ErrAuth):
		writeError(w, http.StatusUnauthorized, CodeAuth, err.Error())
	case errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, CodeTokenExpired, "token expired")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, CodeAuth, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, CodeUnexpected, "unexpected error")
	}
}
