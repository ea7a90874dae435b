package di

// Register stores value as the shared instance of T.
//
// Every Resolve[T] returns a pointer to the same copy of value. It fails
// with DuplicateRegistrationError if T already has an entry.
func Register[T any](c *Container, value T) error {
	handle := &value
	return c.register(KeyOf[T](), &sharedEntry{handle: erase(handle)})
}

// RegisterBuilder stores a constructor for T that runs at most once.
//
// The first Resolve[T] calls build, keeps the result as the shared instance
// and drops build. Later resolutions return that same instance. build may
// resolve other types from c; resolving T itself from inside build fails
// with NotRegisteredError.
func RegisterBuilder[T any](c *Container, build func(*Container) T) error {
	key := KeyOf[T]()
	if build == nil {
		return NilConstructorError{Key: key}
	}
	return c.register(key, &builderEntry{build: erase(build)})
}

// RegisterFactory stores a constructor for T that runs on every Resolve[T].
//
// Each call yields a new instance. State captured by the closure persists
// between calls:
//
//	n := 0
//	_ = di.RegisterFactory(c, func(*di.Container) int { n++; return n })
func RegisterFactory[T any](c *Container, produce func(*Container) T) error {
	key := KeyOf[T]()
	if produce == nil {
		return NilConstructorError{Key: key}
	}
	return c.register(key, &factoryEntry{produce: erase(produce)})
}

// RegisterAutomaticFactory would register a factory that builds T by
// inspecting its fields. It is not supported and always returns a
// NotImplementedError without touching the container.
func RegisterAutomaticFactory[T any](c *Container) error {
	if c == nil {
		return ErrNilContainer
	}
	return NotImplementedError{Op: "automatic factory", Key: KeyOf[T]()}
}

// Has reports whether T has an entry in c.
func Has[T any](c *Container) bool {
	return c.HasKey(KeyOf[T]())
}
