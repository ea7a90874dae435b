package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilContainer is returned when a registration or resolution is
	// attempted on a nil *Container.
	ErrNilContainer = errors.New("di: nil container")

	// ErrNilConstructor is the sentinel behind NilConstructorError.
	ErrNilConstructor = errors.New("di: nil constructor")

	// ErrNotImplemented is the sentinel behind NotImplementedError.
	ErrNotImplemented = errors.New("di: not implemented")
)

// DuplicateRegistrationError is returned when a type that already has an
// entry is registered again. The existing entry is left untouched.
type DuplicateRegistrationError struct{ Key TypeKey }

// Error implements the error interface.
func (e DuplicateRegistrationError) Error() string {
	// Example: di: type "*app.DB" already registered
	return "di: type " + strconv.Quote(e.Key.String()) + " already registered"
}

// NotRegisteredError is returned when resolving a type with no entry.
//
// A builder that resolves its own type while it is running also gets this
// error: the entry is out of the table for the duration of construction.
type NotRegisteredError struct{ Key TypeKey }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	// Example: di: type "*app.DB" not registered
	return "di: type " + strconv.Quote(e.Key.String()) + " not registered"
}

// TypeMismatchError reports a stored payload whose dynamic type is not the
// one its key promises. It signals a broken internal invariant; callers
// should never see it.
type TypeMismatchError struct {
	// Key is the key the payload was stored under.
	Key TypeKey

	// GotType is reflect.TypeOf(payload).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: di: entry for "*app.DB" holds wrong type (*app.Logger)
	return "di: entry for " + strconv.Quote(e.Key.String()) + " holds wrong type (" + e.GotType + ")"
}

// ReentrantFactoryError is returned when a factory constructor resolves its
// own type while it is still running.
type ReentrantFactoryError struct{ Key TypeKey }

// Error implements the error interface.
func (e ReentrantFactoryError) Error() string {
	return "di: factory for " + strconv.Quote(e.Key.String()) + " resolved itself while running"
}

// NilConstructorError is returned when RegisterBuilder or RegisterFactory
// receives a nil function. It unwraps to ErrNilConstructor.
type NilConstructorError struct{ Key TypeKey }

// Error implements the error interface.
func (e NilConstructorError) Error() string {
	return "di: nil constructor for type " + strconv.Quote(e.Key.String())
}

// Unwrap returns ErrNilConstructor.
func (e NilConstructorError) Unwrap() error { return ErrNilConstructor }

// NotImplementedError is returned by operations the container exposes but
// does not support. It unwraps to ErrNotImplemented.
type NotImplementedError struct {
	Op  string
	Key TypeKey
}

// Error implements the error interface.
func (e NotImplementedError) Error() string {
	return "di: " + e.Op + " not implemented (type " + strconv.Quote(e.Key.String()) + ")"
}

// Unwrap returns ErrNotImplemented.
func (e NotImplementedError) Unwrap() error { return ErrNotImplemented }

// IsNotRegistered reports whether err (or anything it wraps) is a NotRegisteredError.
func IsNotRegistered(err error) bool {
	var target NotRegisteredError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err (or anything it wraps) is a DuplicateRegistrationError.
func IsDuplicate(err error) bool {
	var target DuplicateRegistrationError
	return errors.As(err, &target)
}
