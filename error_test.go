package autorace_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/autorace"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := autorace.Errorf(autorace.EINVALID, "invalid race number %d", 13)

	assert.Equal(t, autorace.EINVALID, autorace.ErrorCode(err))
	assert.Equal(t, "invalid race number 13", autorace.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, autorace.ErrorCode(nil))
	})

	t.Run("unwraps wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch: %w", autorace.Errorf(autorace.ENOTFOUND, "HTTP 404"))

		assert.Equal(t, autorace.ENOTFOUND, autorace.ErrorCode(err))
		assert.Equal(t, "HTTP 404", autorace.ErrorMessage(err))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")

		assert.Equal(t, autorace.EINTERNAL, autorace.ErrorCode(err))
		assert.Equal(t, "connection reset", autorace.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, autorace.ErrorMessage(nil))
}
