package di

import "reflect"

// TypeKey identifies a registered type inside a Container.
//
// Two keys derived from the same Go type always compare equal, so a key
// can be recreated anywhere without sharing a package-level variable.
// Interface types are valid keys:
//
//	di.KeyOf[io.Writer]() != di.KeyOf[*os.File]()
type TypeKey struct {
	t reflect.Type
}

// KeyOf returns the TypeKey for T.
func KeyOf[T any]() TypeKey {
	return TypeKey{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// Type returns the underlying reflect.Type (nil for the zero key).
func (k TypeKey) Type() reflect.Type { return k.t }

// String returns the Go spelling of the type, e.g. "*di_test.DB".
func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}
