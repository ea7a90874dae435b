package di

import "go.uber.org/zap"

// Resolve returns the instance of T held by c.
//
// Shared entries (including memoized builders) return the same pointer on
// every call. Factory entries return a new pointer per call. A type with no
// entry fails with NotRegisteredError; nothing is ever substituted.
func Resolve[T any](c *Container) (*T, error) {
	if c == nil || c.entries == nil {
		return nil, ErrNilContainer
	}
	key := KeyOf[T]()

	e, ok := c.entries.get(key)
	if !ok {
		c.log.Debug("resolve miss", zap.Stringer("type", key))
		return nil, NotRegisteredError{Key: key}
	}

	switch e := e.(type) {
	case *sharedEntry:
		return unerase[*T](key, e.handle)
	case *builderEntry:
		return build[T](c, key)
	case *factoryEntry:
		return produce[T](c, key, e)
	default:
		return nil, TypeMismatchError{Key: key, GotType: typeName(e)}
	}
}

// MustResolve is Resolve that panics on error. It is meant for use inside
// constructors and tests, where a missing dependency is a wiring bug.
func MustResolve[T any](c *Container) *T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// build runs a builder entry and memoizes the result.
//
// The entry is taken out of the table before the constructor runs, so the
// constructor can resolve anything else from c and can never run twice.
// If the constructor panics, the builder goes back in before the panic
// continues.
func build[T any](c *Container, key TypeKey) (*T, error) {
	e, ok := c.entries.take(key)
	if !ok {
		return nil, NotRegisteredError{Key: key}
	}
	b, ok := e.(*builderEntry)
	if !ok {
		_ = c.entries.replace(key, e)
		return nil, TypeMismatchError{Key: key, GotType: typeName(e)}
	}
	ctor, err := unerase[func(*Container) T](key, b.build)
	if err != nil {
		_ = c.entries.replace(key, b)
		return nil, err
	}

	done := false
	defer func() {
		if done {
			return
		}
		c.log.Warn("builder panicked, entry restored", zap.Stringer("type", key))
		_ = c.entries.replace(key, b)
	}()

	v := ctor(c)
	done = true

	handle := &v
	if err := c.entries.replace(key, &sharedEntry{handle: erase(handle), memoized: true}); err != nil {
		return nil, err
	}
	c.log.Debug("builder memoized", zap.Stringer("type", key))
	return handle, nil
}

// produce runs a factory entry. The entry stays in the table.
func produce[T any](c *Container, key TypeKey, f *factoryEntry) (*T, error) {
	if f.running {
		return nil, ReentrantFactoryError{Key: key}
	}
	ctor, err := unerase[func(*Container) T](key, f.produce)
	if err != nil {
		return nil, err
	}

	f.running = true
	defer func() { f.running = false }()

	v := ctor(c)
	f.calls++
	c.log.Debug("factory invoked", zap.Stringer("type", key), zap.Int("calls", f.calls))
	return &v, nil
}
