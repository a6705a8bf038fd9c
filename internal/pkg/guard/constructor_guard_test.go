package guard_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a command object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type restoreCommand struct {
		shipmentID int64
		guard      guard.ConstructorGuard
	}

	var errRestoreNotConstructed = errors.New("restoreCommand must be created via newRestoreCommand")

	newRestoreCommand := func(shipmentID int64) (restoreCommand, error) {
		if shipmentID <= 0 {
			return restoreCommand{}, errors.New("shipment id must be positive")
		}
		return restoreCommand{
			shipmentID: shipmentID,
			guard:      guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		cmd, err := newRestoreCommand(7)

		// Then
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errRestoreNotConstructed))
		assert.Equal(t, int64(7), cmd.shipmentID)
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		// Given
		cmd := restoreCommand{shipmentID: 7}

		// When
		err := cmd.guard.Validate(errRestoreNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errRestoreNotConstructed, err)
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newRestoreCommand(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}
