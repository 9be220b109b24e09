package service

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
)

// errorInspector classifies errors returned by the graphql client.
// The client only exposes plain messages, so most checks are string based
type errorInspector struct{}

func newErrorInspector() errorInspector {
	return errorInspector{}
}

// non-200 responses are reported as "non-200 OK status code: 401 Unauthorized body: ..."
const httpStatusPrefix = "non-200 ok status code:"

func (errorInspector) httpStatus(err error) string {
	errStr := strings.ToLower(err.Error())

	index := strings.Index(errStr, httpStatusPrefix)
	if index < 0 {
		return ""
	}

	fields := strings.Fields(errStr[index+len(httpStatusPrefix):])
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func (i errorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "rate_limited") ||
		i.httpStatus(err) == "429"
}

func (i errorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	status := i.httpStatus(err)
	errStr := strings.ToLower(err.Error())
	return status == "401" ||
		status == "403" ||
		strings.Contains(errStr, "bad credentials")
}

// IsTransportError is true when github could not be reached or answered without a graphql payload
func (i errorInspector) IsTransportError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// graphql payload messages can mention timeouts too, only the status prefix is trusted
	return i.httpStatus(err) != ""
}
