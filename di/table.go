package di

import "sort"

// table maps a TypeKey to exactly one entry.
//
// It is intentionally:
//   - insert-only: an occupied key is never overwritten
//   - single-owner: no locking, the Container is not shared across goroutines
type table struct {
	entries map[TypeKey]entry
}

func newTable() *table {
	return &table{entries: map[TypeKey]entry{}}
}

// insert stores e under key, or fails if key is already occupied.
func (t *table) insert(key TypeKey, e entry) error {
	if _, exists := t.entries[key]; exists {
		return DuplicateRegistrationError{Key: key}
	}
	t.entries[key] = e
	return nil
}

func (t *table) has(key TypeKey) bool {
	_, ok := t.entries[key]
	return ok
}

func (t *table) get(key TypeKey) (entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// take removes the entry for key and hands it to the caller.
func (t *table) take(key TypeKey) (entry, bool) {
	e, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	return e, ok
}

// replace puts e back under a key vacated by take. If something was
// registered under key in the meantime, that registration wins and replace
// reports the duplicate.
func (t *table) replace(key TypeKey, e entry) error {
	return t.insert(key, e)
}

func (t *table) len() int { return len(t.entries) }

// keys returns the occupied keys ordered by type name.
func (t *table) keys() []TypeKey {
	out := make([]TypeKey, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
