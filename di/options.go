package di

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Container in New.
type Option func(*Container)

// WithLogger sets the logger the container reports registrations and
// resolutions to. Events are logged at debug level, except a builder that
// panics, which is logged as a warning. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithID overrides the randomly generated container id.
func WithID(id uuid.UUID) Option {
	return func(c *Container) { c.id = id }
}
