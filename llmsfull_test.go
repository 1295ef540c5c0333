package llmsfull_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/llmsfull"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := llmsfull.Errorf(llmsfull.ENOTFOUND, "url list for %q not found", "https://example.com")

	assert.Equal(t, llmsfull.ENOTFOUND, llmsfull.ErrorCode(err))
	assert.Equal(t, "url list for \"https://example.com\" not found", llmsfull.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, llmsfull.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, llmsfull.EINTERNAL, llmsfull.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, llmsfull.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", llmsfull.ErrorMessage(errors.New("boom")))
}
