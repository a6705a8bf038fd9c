package kernel_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("parses ISO date", func(t *testing.T) {
		d, err := kernel.ParseDate("2025-05-10", "dispatchDate")

		require.NoError(t, err)
		assert.Equal(t, kernel.NewDate(2025, time.May, 10), d)
		assert.Equal(t, "2025-05-10", kernel.FormatDate(d))
	})

	t.Run("blank date is required error", func(t *testing.T) {
		_, err := kernel.ParseDate("  ", "dispatchDate")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed date is invalid", func(t *testing.T) {
		_, err := kernel.ParseDate("10/05/2025", "dispatchDate")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	withClock := time.Date(2025, time.May, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, kernel.NewDate(2025, time.May, 10), kernel.DateOf(withClock))
	assert.True(t, kernel.DateOf(time.Time{}).IsZero())
	assert.Empty(t, kernel.FormatDate(time.Time{}))
}
