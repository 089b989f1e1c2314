package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/nutritrack/internal/common"
)

// Error codes of the server's response envelope.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeAuth         = "AUTH_ERROR"
	codeEmailTaken   = "EMAIL_TAKEN"
	codeNotFound     = "NOT_FOUND"
	codeTokenExpired = "TOKEN_EXPIRED"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapError turns an error envelope back into the common error it was
// produced from.
func mapError(status int, body *errorBody) error {
	if body == nil {
		body = &errorBody{}
	}
	switch body.Code {
	case codeValidation:
		return common.NewValidationError(body.Message)
	case codeEmailTaken:
		return common.ErrEmailTaken
	case codeAuth:
		switch body.Message {
		case common.ErrAccountCreation.Message:
			return common.ErrAccountCreation
		case common.ErrInvalidCredentials.Message:
			return common.ErrInvalidCredentials
		}
		return common.ErrorUnauthorized
	case codeTokenExpired:
		return common.ErrTokenExpired
	case codeNotFound:
		return common.ErrorNotFound
	}
	if status == http.StatusUnauthorized {
		return common.ErrorUnauthorized
	}
	return fmt.Errorf("%w: status %d %s", common.ErrUnexpected, status, body.Message)
}

func networkError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrNetwork, err)
}
