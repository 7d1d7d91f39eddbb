package order

import "errors"

var (
	// ErrStoreUnavailable wraps every failed read or overwrite of the store.
	ErrStoreUnavailable = errors.New("order store unavailable")
	// ErrMalformedDate means a due date cell could not be parsed; the load fails.
	ErrMalformedDate = errors.New("malformed due date")
	// ErrMalformedID means an id cell is not an integer.
	ErrMalformedID = errors.New("malformed order id")
	// ErrDuplicateID means two rows share the same id.
	ErrDuplicateID = errors.New("duplicate order id")

	ErrEmptyProduct   = errors.New("product is required")
	ErrInvalidDueDate = errors.New("due date is invalid")
	ErrOrderNotFound  = errors.New("order not found")
)

// IsValidation reports whether err is a local, recoverable input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyProduct) || errors.Is(err, ErrInvalidDueDate)
}

// IsLoadFailure reports whether err prevents the list from being shown at all.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrMalformedID) ||
		errors.Is(err, ErrDuplicateID)
}
