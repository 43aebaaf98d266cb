package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller does not own the resource it mutates
	ErrForbidden = errors.New("you are not allowed to act on this resource")
)

// Violation codes carried by ValidationError, ShapeError and
// CompositionError. The REST layer keys user-facing messages off the
// validation codes, so their values are part of the API contract.
const (
	CodeNewThreadMissingProperty = "NEW_THREAD.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeNewThreadWrongDataType   = "NEW_THREAD.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"

	CodeNewCommentContentUndefined     = "NEW_COMMENT.CONTENT_UNDEFINED"
	CodeNewCommentContentWrongDataType = "NEW_COMMENT.CONTENT_NOT_MET_DATA_TYPE_SPECIFICATION"
	CodeNewCommentContentEmpty         = "NEW_COMMENT.CONTENT_CAN_NOT_BE_EMPTY"
	CodeNewCommentMissingProperty      = "NEW_COMMENT.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeNewCommentWrongDataType        = "NEW_COMMENT.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"

	CodeNewReplyContentUndefined     = "NEW_REPLY.CONTENT_UNDEFINED"
	CodeNewReplyContentWrongDataType = "NEW_REPLY.CONTENT_NOT_MET_DATA_TYPE_SPECIFICATION"
	CodeNewReplyContentEmpty         = "NEW_REPLY.CONTENT_CAN_NOT_BE_EMPTY"
	CodeNewReplyMissingProperty      = "NEW_REPLY.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeNewReplyWrongDataType        = "NEW_REPLY.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"

	CodeCommentLikeMissingProperty = "COMMENT_LIKE.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeCommentLikeWrongDataType   = "COMMENT_LIKE.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"

	CodeAddedThreadMissingProperty  = "ADDED_THREAD.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeAddedCommentMissingProperty = "ADDED_COMMENT.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeAddedReplyMissingProperty   = "ADDED_REPLY.NOT_CONTAIN_REQUIRED_PROPERTY"

	CodeThreadMissingProperty  = "THREAD.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeThreadWrongDataType    = "THREAD.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"
	CodeCommentMissingProperty = "COMMENT.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeCommentWrongDataType   = "COMMENT.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"
	CodeReplyMissingProperty   = "REPLY.NOT_CONTAIN_REQUIRED_PROPERTY"
	CodeReplyWrongDataType     = "REPLY.PROPERTY_NOT_MET_DATA_TYPE_SPECIFICATION"

	CodeThreadCommentsNotList       = "THREAD.COMMENTS_MUST_BE_AN_ARRAY_OF_COMMENT"
	CodeCommentRepliesNotList       = "COMMENT.REPLIES_MUST_BE_AN_ARRAY_OF_REPLY"
	CodeCommentLikeCountNegative    = "COMMENT.LIKE_COUNT_MUST_BE_A_NON_NEGATIVE_NUMBER"
	CodeThreadDetailMissingProperty = "THREAD_DETAIL.NOT_CONTAIN_REQUIRED_PROPERTY"
)

// ValidationError reports a malformed or incomplete write payload. It is
// recoverable: the caller can correct the input and resubmit. The exact
// Code must be preserved through the layers so the user gets a
// field-aware message.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return e.Code }

// ShapeError reports a persisted or intermediate record that does not
// match its expected shape. It points at an internal inconsistency such
// as a corrupt read, never at user input, and must be surfaced as a
// generic failure.
type ShapeError struct {
	Code string
}

func (e *ShapeError) Error() string { return e.Code }

// CompositionError reports a violated aggregation or mutator invariant.
// It can only come from a wiring defect inside the service itself.
type CompositionError struct {
	Code string
}

func (e *CompositionError) Error() string { return e.Code }
