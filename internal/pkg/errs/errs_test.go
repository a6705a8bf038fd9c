package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := errs.NewAlreadyExistsError("order", "number", "0001")

		assert.Equal(t, "order", err.Entity)
		assert.Equal(t, "number", err.ParamName)
		assert.Equal(t, "0001", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value already exists: order number 0001", err.Error())
		assert.Equal(t, errs.ErrAlreadyExists, err.Unwrap())
	})

	t.Run("NewAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewAlreadyExistsErrorWithCause("shipment", "tracking", "TRK-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value already exists: shipment tracking TRK-1 (cause: duplicate key)", err.Error())
	})

	t.Run("is not a validation error", func(t *testing.T) {
		err := errs.NewAlreadyExistsError("order", "number", "0001")
		assert.NotErrorIs(t, err, errs.ErrValidation)
	})
}

func TestIntegrityViolationError(t *testing.T) {
	t.Run("NewIntegrityViolationError", func(t *testing.T) {
		err := errs.NewIntegrityViolationError("shipment 7 does not belong to order 3")

		assert.Equal(t, "integrity violation: shipment 7 does not belong to order 3", err.Error())
		assert.Equal(t, errs.ErrIntegrityViolation, err.Unwrap())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("NewIntegrityViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("owned elsewhere")
		err := errs.NewIntegrityViolationErrorWithCause("shipment is linked", cause)

		assert.Equal(t, "integrity violation: shipment is linked (cause: owned elsewhere)", err.Error())
	})
}

func TestStoreError(t *testing.T) {
	t.Run("NewStoreErrorWithID", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewStoreErrorWithID("update", "order", 42, cause)

		assert.Equal(t, "store failure: update order 42 (cause: connection reset)", err.Error())
		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, cause)
	})

	t.Run("NewStoreError", func(t *testing.T) {
		err := errs.NewStoreError("list", "shipment", nil)

		assert.Equal(t, "store failure: list shipment", err.Error())
		require.ErrorIs(t, err, errs.ErrStore)
		assert.NotErrorIs(t, err, errs.ErrValidation)
	})
}

func TestValidationCategory(t *testing.T) {
	validation := []error{
		errs.NewValueIsRequiredError("number"),
		errs.NewValueIsInvalidError("status"),
		errs.NewValueIsOutOfRangeError("total", -1, 0, nil),
		errs.NewIntegrityViolationError("foreign shipment"),
	}
	for _, err := range validation {
		require.ErrorIs(t, err, errs.ErrValidation, err.Error())
	}

	other := []error{
		errs.NewObjectNotFoundError("orderId", "1"),
		errs.NewAlreadyExistsError("order", "number", "1"),
		errs.NewStoreError("get", "order", errors.New("boom")),
	}
	for _, err := range other {
		assert.NotErrorIs(t, err, errs.ErrValidation, err.Error())
	}

	wrapped := fmt.Errorf("create order: %w", errs.NewValueIsRequiredError("number"))
	require.ErrorIs(t, wrapped, errs.ErrValidation)
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrAlreadyExists)
		require.Error(t, errs.ErrIntegrityViolation)
		require.Error(t, errs.ErrStore)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value already exists", errs.ErrAlreadyExists.Error())
		assert.Equal(t, "integrity violation", errs.ErrIntegrityViolation.Error())
		assert.Equal(t, "store failure", errs.ErrStore.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		alreadyExistsErr := errs.NewAlreadyExistsError("order", "number", "0001")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrAlreadyExists)

		var target *errs.ObjectNotFoundError
		require.ErrorAs(t, fmt.Errorf("wrapped: %w", objectNotFoundErr), &target)
		assert.Equal(t, "userId", target.ParamName)
	})
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Category
	}{
		{"duplicate", errs.NewAlreadyExistsError("order", "number", "0001"), errs.CategoryDuplicate},
		{"not found", errs.NewObjectNotFoundError("orderId", 1), errs.CategoryNotFound},
		{"integrity before validation", errs.NewIntegrityViolationError("shipment 1 is already linked"), errs.CategoryIntegrity},
		{"validation", errs.NewValueIsRequiredError("number"), errs.CategoryValidation},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("number"), errs.NewValueIsInvalidError("date")), errs.CategoryValidation},
		{"store", errs.NewStoreError("add", "order", errors.New("connection reset")), errs.CategoryStore},
		{"other", errors.New("boom"), errs.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.CategoryOf(tt.err))
		})
	}
}
