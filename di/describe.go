package di

import (
	"io"

	"gopkg.in/yaml.v3"
)

// EntryInfo describes one registered type.
type EntryInfo struct {
	Type string `yaml:"type"`
	Kind Kind   `yaml:"kind"`

	// Memoized is true for a shared entry produced by a builder.
	Memoized bool `yaml:"memoized,omitempty"`

	// Calls counts completed factory invocations.
	Calls int `yaml:"calls,omitempty"`
}

// Snapshot is the serialized view of a Container written by WriteYAML.
type Snapshot struct {
	Container string      `yaml:"container"`
	Entries   []EntryInfo `yaml:"entries"`
}

// Describe returns one EntryInfo per registered type, ordered by type name.
// Builders that are running at the time of the call are not listed.
func (c *Container) Describe() []EntryInfo {
	keys := c.Keys()
	out := make([]EntryInfo, 0, len(keys))
	for _, k := range keys {
		e, _ := c.entries.get(k)
		info := EntryInfo{Type: k.String(), Kind: e.kind()}
		switch e := e.(type) {
		case *sharedEntry:
			info.Memoized = e.memoized
		case *factoryEntry:
			info.Calls = e.calls
		}
		out = append(out, info)
	}
	return out
}

// WriteYAML writes a Snapshot of c to w.
func (c *Container) WriteYAML(w io.Writer) error {
	if c == nil {
		return ErrNilContainer
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot{Container: c.id.String(), Entries: c.Describe()}); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
