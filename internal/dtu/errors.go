// internal/dtu/errors.go
package dtu

import "errors"

var (
	// ErrConnectionFailure means the link could not be opened.
	ErrConnectionFailure = errors.New("dtu: connection failure")

	// ErrCharacteristicNotFound means the vendor characteristic is
	// absent from the service tree. Fatal for the current request.
	ErrCharacteristicNotFound = errors.New("dtu: characteristic not found")

	// ErrTimeout means no complete response arrived within the bound.
	ErrTimeout = errors.New("dtu: timeout")

	// ErrParseFailure means every register dialect rejected the reply.
	ErrParseFailure = errors.New("dtu: parse failure")
)
