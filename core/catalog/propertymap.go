package catalog

import "fmt"

// PropertyMap is the read-only localized information table of one Variant.
// Every entry is addressable both by its canonical string name and by its
// integer PropertyID; both resolve to the same stored value. Entries keep
// the order they were stored in, and Keys, Values and Items all iterate in
// that same order.
type PropertyMap struct {
	entries []Property
	byName  map[string]int
	byID    map[PropertyID]int
}

func newPropertyMap(props []Property) *PropertyMap {
	m := &PropertyMap{
		byName: make(map[string]int, len(props)),
		byID:   make(map[PropertyID]int, len(props)),
	}
	for _, p := range props {
		def, known := propertyByID[p.ID]
		if !known {
			// Outside the closed enumeration; dropped.
			continue
		}
		if _, dup := m.byID[p.ID]; dup {
			continue
		}
		m.byID[p.ID] = len(m.entries)
		m.byName[def.name] = len(m.entries)
		m.entries = append(m.entries, p)
	}
	return m
}

// Len reports the number of properties populated for this variant.
func (m *PropertyMap) Len() int {
	return len(m.entries)
}

// Contains reports whether key addresses an entry. It accepts a string name,
// a PropertyID or a plain int; any other key type cannot correspond to an
// entry and yields false rather than an error.
func (m *PropertyMap) Contains(key any) bool {
	switch k := key.(type) {
	case string:
		_, ok := m.byName[k]
		return ok
	case PropertyID:
		_, ok := m.byID[k]
		return ok
	case int:
		_, ok := m.byID[PropertyID(k)]
		return ok
	}
	return false
}

// Get returns the value stored under key, which may be a string name, a
// PropertyID or a plain int. A missing entry fails with ErrNotFound; a key
// type that cannot map to either key space fails with ErrTypeMismatch.
func (m *PropertyMap) Get(key any) (string, error) {
	switch k := key.(type) {
	case string:
		if i, ok := m.byName[k]; ok {
			return m.entries[i].Value, nil
		}
		return "", fmt.Errorf("font property '%s' doesn't exist: %w", k, ErrNotFound)
	case PropertyID:
		return m.getByID(k)
	case int:
		return m.getByID(PropertyID(k))
	}
	return "", fmt.Errorf("'%T' key cannot map to a font property: %w", key, ErrTypeMismatch)
}

func (m *PropertyMap) getByID(id PropertyID) (string, error) {
	if i, ok := m.byID[id]; ok {
		return m.entries[i].Value, nil
	}
	return "", fmt.Errorf("font property %d doesn't exist: %w", id, ErrNotFound)
}

// lookup is the non-failing form used by the global query engine.
func (m *PropertyMap) lookup(id PropertyID) (string, bool) {
	i, ok := m.byID[id]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Keys returns the property names in entry order.
func (m *PropertyMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, p := range m.entries {
		keys[i] = p.Name()
	}
	return keys
}

// Values returns the property values in entry order.
func (m *PropertyMap) Values() []string {
	vals := make([]string, len(m.entries))
	for i, p := range m.entries {
		vals[i] = p.Value
	}
	return vals
}

// Items returns a copy of the entries in entry order.
func (m *PropertyMap) Items() []Property {
	items := make([]Property, len(m.entries))
	copy(items, m.entries)
	return items
}
