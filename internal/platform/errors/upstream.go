package errors

import "net/http"

// FromUpstream maps a non-2xx analytics backend status to a structured error.
// The view name is carried in the message so slice failure logs say which
// endpoint misbehaved
func FromUpstream(status int, view string) error {
	switch {
	case status == http.StatusNotFound:
		return NotFoundf("upstream %s: %d", view, status)
	case status == http.StatusTooManyRequests:
		return Newf(ErrorCodeTooManyRequests, "upstream %s: %d", view, status)
	case status == http.StatusUnauthorized:
		return Unauthorizedf("upstream %s: %d", view, status)
	case status == http.StatusForbidden:
		return Forbiddenf("upstream %s: %d", view, status)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return InvalidArgf("upstream %s: %d", view, status)
	case status >= 500:
		return Unavailablef("upstream %s: %d", view, status)
	default:
		return Internalf("upstream %s: unexpected status %d", view, status)
	}
}
