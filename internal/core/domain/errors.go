package domain

import "errors"

// Ошибки-сентинелы, которые могут вернуть use cases.
// REST-слой транслирует их в HTTP-статусы.
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrForbidden       = errors.New("listing belongs to another admin")
	ErrInvalidInput    = errors.New("invalid input")
)
