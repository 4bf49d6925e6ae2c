package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openisa/nps-stub/internal/domain/service"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err carries the expected substring,
// used where a wrapped failure must surface its underlying description.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// RequirePageNotFound fails the test unless err is a PageNotFoundError
// carrying the given page index.
func RequirePageNotFound(t *testing.T, err error, skip int) {
	t.Helper()
	var pnf *service.PageNotFoundError
	require.ErrorAs(t, err, &pnf)
	require.Equal(t, skip, pnf.Skip)
}
