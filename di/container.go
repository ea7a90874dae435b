package di

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Container is a type-keyed registry of shared values, builders and factories.
//
// Each Go type has at most one entry. Entries are added with Register,
// RegisterBuilder and RegisterFactory and read back with Resolve:
//
//	c := di.New()
//	_ = di.Register(c, &DB{DSN: "postgres://"})
//	_ = di.RegisterBuilder(c, func(c *di.Container) *UserService {
//		return &UserService{DB: *di.MustResolve[*DB](c)}
//	})
//	svc, err := di.Resolve[*UserService](c)
//
// A Container is meant for a single goroutine (typically main while it
// assembles the application). Constructors may call Resolve on the same
// Container while they run.
type Container struct {
	id      uuid.UUID
	log     *zap.Logger
	entries *table
}

// New returns an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		id:      uuid.New(),
		log:     zap.NewNop(),
		entries: newTable(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.log = c.log.With(zap.Stringer("container", c.id))
	return c
}

// ID returns the container's identifier, used in logs and snapshots.
func (c *Container) ID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.id
}

// HasKey reports whether key has an entry.
//
// A builder that is currently running is not in the table, so HasKey
// returns false for its key until construction finishes.
func (c *Container) HasKey(key TypeKey) bool {
	if c == nil || c.entries == nil {
		return false
	}
	return c.entries.has(key)
}

// Len returns the number of registered types.
func (c *Container) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return c.entries.len()
}

// Keys returns the registered keys ordered by type name.
func (c *Container) Keys() []TypeKey {
	if c == nil || c.entries == nil {
		return nil
	}
	return c.entries.keys()
}

func (c *Container) register(key TypeKey, e entry) error {
	if c == nil || c.entries == nil {
		return ErrNilContainer
	}
	if err := c.entries.insert(key, e); err != nil {
		c.log.Debug("registration rejected", zap.Stringer("type", key), zap.Error(err))
		return err
	}
	c.log.Debug("registered", zap.Stringer("type", key), zap.Stringer("kind", e.kind()))
	return nil
}
