package di

import "reflect"

// payload holds a value of any type behind one representation so that
// unrelated types can live in the same table.
type payload struct {
	v any
}

func erase(v any) payload { return payload{v: v} }

// unerase recovers the typed value from p.
//
// The recovery is a checked type assertion: a payload whose dynamic type is
// not V yields a TypeMismatchError instead of a bogus value.
func unerase[V any](key TypeKey, p payload) (V, error) {
	v, ok := p.v.(V)
	if !ok {
		var zero V
		return zero, TypeMismatchError{Key: key, GotType: typeName(p.v)}
	}
	return v, nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
