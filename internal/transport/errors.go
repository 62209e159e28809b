package transport

import (
	"errors"

	"github.com/takumi/atelier/internal/domain/attendance"
	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/domain/message"
	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/domain/user"
	"github.com/takumi/atelier/internal/repository"
	"github.com/takumi/atelier/internal/suggest"
)

// errBadParams marks request payloads that failed to decode.
var errBadParams = errors.New("invalid params")

// errMethodNotFound marks dispatch misses.
var errMethodNotFound = errors.New("method not found")

// rpcError classifies a domain error into the four-kind taxonomy. Anything
// unrecognized is a persistence-layer failure, propagated verbatim.
func rpcError(err error) *Error {
	switch {
	case errors.Is(err, errMethodNotFound):
		return &Error{Code: ErrMethodNotFound, Message: err.Error(), Data: ErrorData{Kind: KindValidation}}
	case isValidation(err):
		return &Error{Code: ErrInvalidParams, Message: err.Error(), Data: ErrorData{Kind: KindValidation}}
	case isNotFound(err):
		return &Error{Code: ErrNotFoundCode, Message: err.Error(), Data: ErrorData{Kind: KindNotFound}}
	case errors.Is(err, suggest.ErrService):
		return &Error{Code: ErrExternalCode, Message: err.Error(), Data: ErrorData{Kind: KindExternal}}
	default:
		return &Error{Code: ErrInternal, Message: err.Error(), Data: ErrorData{Kind: KindStorage}}
	}
}

func isValidation(err error) bool {
	return errors.Is(err, errBadParams) ||
		errors.Is(err, user.ErrInvalidInput) ||
		errors.Is(err, chat.ErrInvalidInput) ||
		errors.Is(err, message.ErrInvalidInput) ||
		errors.Is(err, project.ErrInvalidInput) ||
		errors.Is(err, attendance.ErrInvalidInput) ||
		errors.Is(err, repository.ErrInvalidInput)
}

func isNotFound(err error) bool {
	return errors.Is(err, user.ErrUserNotFound) ||
		errors.Is(err, chat.ErrConversationNotFound) ||
		errors.Is(err, project.ErrProjectNotFound) ||
		errors.Is(err, repository.ErrNotFound)
}
