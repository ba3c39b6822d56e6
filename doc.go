// Package structdiff computes minimal, path-addressed edit scripts between
// nested data values, and applies those scripts to reconstruct the target
// value from the source. It's intended for data versioning, sync, and
// change-tracking workloads where composite values should be compared
// structurally rather than byte-wise.
//
// Instead of operating on an encoded document, structdiff operates on the go
// types produced by unmarshaling, which are three composite types:
//
//	map[string]interface{}
//	[]interface{}
//	Set
//
// and scalar leaves (string, bool, float64, int64, nil, etc). Set is
// supplied by this package since go has no native unordered collection. By
// working on native go types structdiff can compare documents decoded from
// different formats, for example JSON and YAML (see DecodeJSON, DecodeYAML).
//
// Diff walks both values once, dispatching on the category of each pair of
// values it encounters. Ordered sequences are aligned with a
// furthest-reaching-point algorithm indexed by diagonal, which runs in
// O(N·P) time where P is the number of insert/delete moves, so diffs of
// similar sequences stay near-linear. Adjacent delete+insert pairs in the
// alignment are coalesced into single positional replacements, and a
// replaced position holding a composite recurses for nested minimality.
//
// The result is an EditScript: an append-only log of add, delete, and
// replace operations anchored on typed paths, plus running counts of each
// kind. Patch replays a script against a copy of the original value and
// either reproduces the target exactly or fails on the first path that does
// not resolve.
//
// Inputs are assumed to be acyclic trees of bounded depth; recursion depth
// tracks input nesting.
package structdiff
