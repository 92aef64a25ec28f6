package catalog

import "errors"

// Sentinel errors for the catalog's error taxonomy. Call sites wrap these
// with fmt.Errorf("...: %w", ...) so callers can classify failures with
// errors.Is while still getting a specific message.
var (
	// ErrNotFound reports a lookup by a name or key that has no entry:
	// an unknown family name, an unknown variant name, or a font property
	// absent from a variant's information map.
	ErrNotFound = errors.New("not found")

	// ErrIndexOutOfRange reports an integer index outside [0, length) on
	// Collection or Family positional access.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument reports malformed filters on the global query and
	// unparseable axis values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch reports a key or value whose type cannot map to the
	// expected key or value space, e.g. a float64 key on a PropertyMap.
	ErrTypeMismatch = errors.New("type mismatch")
)
