package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{ErrBadCredentials, http.StatusUnauthorized, "invalid credentials"},
		{ErrNoToken, http.StatusUnauthorized, "authentication required"},
		{ErrNotFound, http.StatusNotFound, "not found"},
		{ErrDuplicateAccount, http.StatusConflict, "an account with that email already exists"},
		{ErrPersistence, http.StatusInternalServerError, "internal error"},
		{fmt.Errorf("some unknown failure"), http.StatusInternalServerError, "internal error"},
	}
	for _, tc := range cases {
		code, msg := Status(tc.err)
		require.Equal(t, tc.code, code)
		require.Equal(t, tc.msg, msg)
	}
}

func TestStatus_WrappedCauseKeepsMapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: email lookup: no documents", ErrBadCredentials)
	code, msg := Status(wrapped)
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "invalid credentials", msg)
}
