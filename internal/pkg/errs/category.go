package errs

import "errors"

// Category names the kind of failure for presentation. The more specific categories
// are checked first because integrity violations also match ErrValidation.
type Category string

const (
	CategoryDuplicate  Category = "duplicate"
	CategoryNotFound   Category = "not found"
	CategoryIntegrity  Category = "integrity"
	CategoryValidation Category = "validation"
	CategoryStore      Category = "store"
	CategoryOther      Category = "error"
)

func CategoryOf(err error) Category {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return CategoryDuplicate
	case errors.Is(err, ErrObjectNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrIntegrityViolation):
		return CategoryIntegrity
	case errors.Is(err, ErrValidation):
		return CategoryValidation
	case errors.Is(err, ErrStore):
		return CategoryStore
	default:
		return CategoryOther
	}
}
