package di

import "gopkg.in/yaml.v3"

// Kind says how an entry produces its instance.
type Kind uint8

const (
	// KindShared holds one already-built instance.
	KindShared Kind = iota + 1
	// KindBuilder holds a constructor that runs once, on first resolution,
	// and is then replaced by a KindShared entry.
	KindBuilder
	// KindFactory holds a constructor that runs on every resolution.
	KindFactory
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindShared:
		return "shared"
	case KindBuilder:
		return "builder"
	case KindFactory:
		return "factory"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) { return k.String(), nil }

// UnmarshalYAML reads the kind by name.
func (k *Kind) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "shared":
		*k = KindShared
	case "builder":
		*k = KindBuilder
	case "factory":
		*k = KindFactory
	default:
		*k = 0
	}
	return nil
}

// entry is one resolver stored in the table. The concrete types below are
// the only implementations.
type entry interface {
	kind() Kind
}

// sharedEntry holds a *T erased into a payload.
type sharedEntry struct {
	handle payload

	// memoized is set when the entry was produced by a builder.
	memoized bool
}

// builderEntry holds a func(*Container) T. It is taken out of the table
// before it runs and never goes back in as a builder after a success.
type builderEntry struct {
	build payload
}

// factoryEntry holds a func(*Container) T. Any state the function captures
// lives as long as the entry.
type factoryEntry struct {
	produce payload
	calls   int
	running bool
}

func (*sharedEntry) kind() Kind  { return KindShared }
func (*builderEntry) kind() Kind { return KindBuilder }
func (*factoryEntry) kind() Kind { return KindFactory }
