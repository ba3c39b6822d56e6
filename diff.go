package structdiff

// Diff computes an edit script for turning a into b. It returns nil when a
// and b are the identical value (pointer identity for composites), and an
// empty script when they are structurally equal but distinct values.
//
// Diffing never fails for well-formed acyclic values; cyclic input is a
// caller precondition violation.
func Diff(a, b interface{}, opts ...DiffOption) *EditScript {
	if identical(a, b) {
		return nil
	}

	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &differ{cfg: cfg, sc: newEditScript(a)}
	d.diffAt(nil, a, b, true, true)
	return d.sc
}

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Trace, if non-nil, is invoked for every (path, a, b) pair the differ
	// visits. See WriteTracer for a ready-made hook.
	Trace TraceFunc
}

// DiffOption is a function that adjusts a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionTrace installs a trace hook invoked on every recursive visit
func OptionTrace(fn TraceFunc) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Trace = fn
	}
}

// differ drives a single recursive traversal, emitting operations into one
// edit script
type differ struct {
	cfg *DiffConfig
	sc  *EditScript
}

// diffAt compares the values at one path. haveA / haveB carry absence as a
// call-site fact: a map key missing from one side arrives here as a present
// value on one side and !have on the other.
func (d *differ) diffAt(p Path, a, b interface{}, haveA, haveB bool) {
	if d.cfg.Trace != nil {
		d.cfg.Trace(p, a, b)
	}

	switch {
	case !haveA && !haveB:
		return
	case !haveA:
		d.sc.recordAdd(p, b)
		return
	case !haveB:
		d.sc.recordDelete(p)
		return
	}

	ka, kb := classify(a), classify(b)
	if ka == kb {
		switch ka {
		case kindMap:
			d.diffMaps(p, a.(map[string]interface{}), b.(map[string]interface{}))
			return
		case kindSequence:
			d.diffSequences(p, a.([]interface{}), b.([]interface{}))
			return
		case kindSet:
			d.diffSets(p, a.(Set), b.(Set))
			return
		}
	}

	// scalars, or a category change: one leaf operation or nothing
	if !eq(a, b) {
		d.sc.recordReplace(p, b)
	}
}

// diffMaps recurses into each key of either side, in sorted order for a
// deterministic script. Presence is decided with a comma-ok lookup, so a
// key explicitly set to nil in b diffs as an add or replace of nil rather
// than being mistaken for a missing key.
func (d *differ) diffMaps(p Path, a, b map[string]interface{}) {
	for _, k := range sortedKeys(a) {
		vb, ok := b[k]
		d.diffAt(p.with(StringAddr(k)), a[k], vb, true, ok)
	}
	for _, k := range sortedKeys(b) {
		if _, ok := a[k]; ok {
			continue
		}
		d.diffAt(p.with(StringAddr(k)), nil, b[k], false, true)
	}
}

// diffSets records the symmetric difference. Sets never substitute one
// element for another: every change is an add/delete pair addressed by the
// element itself.
func (d *differ) diffSets(p Path, a, b Set) {
	for _, e := range a.sortedElems() {
		if !b.Has(e) {
			d.sc.recordDelete(p.with(ElemAddr{Elem: e}))
		}
	}
	for _, e := range b.sortedElems() {
		if !a.Has(e) {
			d.sc.recordAdd(p.with(ElemAddr{Elem: e}), e)
		}
	}
}

// diffSequences walks the alignment trace with three cursors: fromIdx is
// the next unconsumed position of a, toIdx the next unconsumed position of
// b, and resIdx the index an emitted operation's path should carry: the
// position the element occupies in the evolving result, which falls behind
// fromIdx as deletions accumulate.
func (d *differ) diffSequences(p Path, a, b []interface{}) {
	fromIdx, resIdx, toIdx := 0, 0, 0
	for _, tok := range align(a, b) {
		switch tok.op {
		case alignCopy:
			fromIdx += tok.run
			resIdx += tok.run
			toIdx += tok.run
		case alignDelete:
			d.sc.recordDelete(p.with(IndexAddr(resIdx)))
			fromIdx++
		case alignInsert:
			d.sc.recordAdd(p.with(IndexAddr(resIdx)), b[toIdx])
			resIdx++
			toIdx++
		case alignReplace:
			// recurse: composites at the same position diff field by field
			d.diffAt(p.with(IndexAddr(resIdx)), a[fromIdx], b[toIdx], true, true)
			fromIdx++
			resIdx++
			toIdx++
		}
	}
}
