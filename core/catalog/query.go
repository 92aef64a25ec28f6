package catalog

import (
	"fmt"
	"sort"
	"strconv"
)

// MatchingVariants runs a filtered query over the whole collection. Each
// filter names a known, filterable font property and a value comparable to
// that property's stored string form; a variant matches only when every
// filter matches its corresponding property value. Variants lacking a
// filtered property simply do not match. Results come back in collection
// enumeration order (families in order, variants within each family in
// order) and may be empty.
//
// All filters are validated before any matching happens: an empty filter
// set, an unknown property name, a known but non-filterable property and an
// inconvertible value each fail immediately.
func (c *Collection) MatchingVariants(filters map[string]any) ([]*Variant, error) {
	if len(filters) == 0 {
		return nil, fmt.Errorf("no filter conditions passed: %w", ErrInvalidArgument)
	}

	type condition struct {
		id   PropertyID
		want string
	}

	// Map order is randomized; validate in sorted key order so the first
	// reported failure is stable.
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	conditions := make([]condition, 0, len(names))
	for _, name := range names {
		def, known := propertyByName[name]
		if !known {
			return nil, fmt.Errorf("%q isn't a known font property name: %w", name, ErrInvalidArgument)
		}
		if !def.filterable {
			return nil, fmt.Errorf("%q doesn't have a mapping to font property id: %w", name, ErrInvalidArgument)
		}
		want, err := coerceFilterValue(filters[name])
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition{id: def.id, want: want})
	}

	var matched []*Variant
	for _, fam := range c.families {
		for _, v := range fam.variants {
			ok := true
			for _, cond := range conditions {
				val, present := v.info.lookup(cond.id)
				if !present || val != cond.want {
					ok = false
					break
				}
			}
			if ok {
				matched = append(matched, v)
			}
		}
	}
	return matched, nil
}

// coerceFilterValue converts a filter value to the string representation
// properties are compared in. Types without a faithful string form, floats
// in particular, are rejected.
func coerceFilterValue(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	}
	return "", fmt.Errorf("'%T' object cannot be converted to 'string': %w", val, ErrTypeMismatch)
}
