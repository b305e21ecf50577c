package reposource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalFetchReturnsInputPathUnchanged(t *testing.T) {
	path, err := Local{}.Fetch(context.Background(), "/some/local/repo", "main", "token")
	assert.NoError(t, err)
	assert.Equal(t, "/some/local/repo", path)
}

func TestFetchErrorMessageIncludesKind(t *testing.T) {
	err := &FetchError{Kind: FailureNotFound, Message: "repository does not exist"}
	assert.Equal(t, "not_found: repository does not exist", err.Error())
}
