// Package catalog models an installed font catalog and answers structured
// queries against it.
//
// The data model is a three-level snapshot: a Collection of Families, each a
// named, ordered group of Variants (one concrete face each). The snapshot is
// built exactly once from a Provider and is immutable afterwards, so every
// accessor and query is a pure function safe for concurrent readers.
//
// # Matching engine
//
// Family.BestVariant selects a single face from partial, possibly
// conflicting criteria. Two deterministic paths exist: the weight/style path
// (style group via a fixed fallback table, then nearest weight, heavier on
// ties) and the stretch-aware path activated by supplying a Stretch
// (lexicographic style rank, stretch distance, weight distance). Both are
// total: a family from a populated Collection always yields a variant.
//
// # Properties and the global query
//
// Each Variant carries a PropertyMap, a dual-keyed table of localized
// informational strings addressable by canonical name ("copyright") or by
// integer id (1). Collection.MatchingVariants filters every variant in the
// snapshot by AND-ed property predicates, validating the filter set before
// any matching happens.
//
// # Errors
//
// Failures wrap one of four sentinels — ErrNotFound, ErrIndexOutOfRange,
// ErrInvalidArgument, ErrTypeMismatch — and are classified with errors.Is.
// The matching engine itself never fails; only the surrounding lookups and
// the global query's validation do.
package catalog
