package domain

import "errors"

// Error kinds. The delivery layer maps these deterministically to HTTP status
// codes instead of inspecting error text.
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrNotFound         = errors.New("not found")
)

// ValidationError is a client-caused payload violation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrMalformedRequest }

// ProductNotFoundError reports the first cart line whose product id did not
// resolve against the store. It is a malformed-request error, not an
// infrastructure failure: the caller referenced an id that does not exist.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string { return "Product not found: " + e.ProductID }

func (e *ProductNotFoundError) Is(target error) bool { return target == ErrMalformedRequest }
