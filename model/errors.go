package model

import "errors"

const (
	CodeNoSkillsRequested = "NO_SKILLS_REQUESTED"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeRateLimitReached  = "RATE_LIMIT_REACHED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeGraphQLError      = "GRAPHQL_ERROR"
	CodeFetchError        = "FETCH_ERROR"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError is returned when the caller request can't be served.
// The message is user-facing
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewNoSkillsRequestedError() *ValidationError {
	return &ValidationError{
		Code:    CodeNoSkillsRequested,
		Message: "no skills requested",
	}
}

// UpstreamError wraps a failure reported by the fetch collaborator.
// Error() returns the collaborator message unchanged
type UpstreamError struct {
	Code string
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Code
	}

	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(code string, err error) *UpstreamError {
	return &UpstreamError{Code: code, Err: err}
}

func NewAPIError(errReason error) APIError {
	var validationErr *ValidationError
	if errors.As(errReason, &validationErr) {
		return APIError{
			Code:    validationErr.Code,
			Message: validationErr.Message,
		}
	}

	var upstreamErr *UpstreamError
	if errors.As(errReason, &upstreamErr) {
		switch upstreamErr.Code {
		case CodeRateLimitReached:
			return APIError{
				Code:    CodeRateLimitReached,
				Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
			}

		default:
			return APIError{
				Code:    upstreamErr.Code,
				Message: upstreamErr.Error(),
			}
		}
	}

	return APIError{
		Code:    "GENERIC_ERROR",
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}
