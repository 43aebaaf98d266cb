package rest

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/natylliB/forum-api/domain"
)

// domainErrorMessages maps validation codes to user-facing messages.
// Codes without an entry pass through untranslated.
var domainErrorMessages = map[string]string{
	domain.CodeNewThreadMissingProperty: "cannot create a new thread because a required property is missing",
	domain.CodeNewThreadWrongDataType:   "cannot create a new thread because a property has the wrong data type",

	domain.CodeNewCommentContentUndefined:     "cannot add a comment because a required property is missing",
	domain.CodeNewCommentContentWrongDataType: "cannot add a comment because a property has the wrong data type",
	domain.CodeNewCommentContentEmpty:         "cannot add a comment, the comment must not be empty",
	domain.CodeNewCommentMissingProperty:      "cannot add a comment because a required property is missing",
	domain.CodeNewCommentWrongDataType:        "cannot add a comment because a property has the wrong data type",

	domain.CodeNewReplyContentUndefined:     "cannot add a reply because a required property is missing",
	domain.CodeNewReplyContentWrongDataType: "cannot add a reply because a property has the wrong data type",
	domain.CodeNewReplyContentEmpty:         "a comment reply must not be empty",
	domain.CodeNewReplyMissingProperty:      "cannot add a reply because a required property is missing",
	domain.CodeNewReplyWrongDataType:        "cannot add a reply because a property has the wrong data type",

	domain.CodeCommentLikeMissingProperty: "cannot process the like because a required property is missing",
	domain.CodeCommentLikeWrongDataType:   "cannot process the like because a property has the wrong data type",
}

// translateError turns a usecase error into a user-facing message.
// Validation codes get their mapped message; shape and composition
// failures are internal and must never leak their codes.
func translateError(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		if msg, ok := domainErrorMessages[verr.Code]; ok {
			return msg
		}
		return verr.Code
	}

	var serr *domain.ShapeError
	var cerr *domain.CompositionError
	if errors.As(err, &serr) || errors.As(err, &cerr) {
		return domain.ErrInternalServerError.Error()
	}

	return err.Error()
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
