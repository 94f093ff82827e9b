package errors

import (
	"net/http"
	"testing"
)

func TestFromUpstream(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusNotFound, ErrorCodeNotFound},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests},
		{http.StatusUnauthorized, ErrorCodeUnauthorized},
		{http.StatusForbidden, ErrorCodeForbidden},
		{http.StatusBadRequest, ErrorCodeInvalidArgument},
		{http.StatusUnprocessableEntity, ErrorCodeInvalidArgument},
		{http.StatusInternalServerError, ErrorCodeUnavailable},
		{http.StatusBadGateway, ErrorCodeUnavailable},
		{http.StatusTeapot, ErrorCodeUnknown},
	}
	for _, tc := range cases {
		err := FromUpstream(tc.status, "materials")
		if got := CodeOf(err); got != tc.want {
			t.Fatalf("status %d: code = %v, want %v", tc.status, got, tc.want)
		}
	}
}
