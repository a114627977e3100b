//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"hotel-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("room not found")
	cause := errors.New("no rows in result set")

	t.Run("マークと元のエラーの両方に一致", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("ラップ後もマークが残る", func(t *testing.T) {
		err := fmt.Errorf("load room: %w", errs.Mark(cause, sentinel))

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("無関係なエラーには一致しない", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)

		assert.NotErrorIs(t, err, errs.New("hotel not found"))
	})

	t.Run("nilはマーク自体を返す", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}
