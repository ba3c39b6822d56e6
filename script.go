package structdiff

import "sync"

// EditScript is the diff's output artifact: an append-only, ordered log of
// operations transforming the base value into the target, plus running
// counts of each operation kind. It is populated during a single Diff call
// and read-only afterward.
//
// Emission is guarded by a single per-instance critical section; the
// append, its path, and the counter update land as one unit, so concurrent
// producers are safe (they serialize on append and may compute their
// sub-diffs in parallel). Counts always agree with the log: adds + deletes
// + replaces == len(Deltas()).
type EditScript struct {
	base interface{}

	mu       sync.Mutex
	deltas   Deltas
	adds     int
	deletes  int
	replaces int
}

func newEditScript(base interface{}) *EditScript {
	return &EditScript{base: base}
}

// Base returns the originating value the script was computed from. It is
// held for reference only and never mutated.
func (sc *EditScript) Base() interface{} {
	return sc.base
}

// Deltas returns the ordered operation log
func (sc *EditScript) Deltas() Deltas {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return append(Deltas{}, sc.deltas...)
}

// Distance is the total number of operations: adds + deletes + replaces.
// Zero means the two values were structurally equal.
func (sc *EditScript) Distance() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.adds + sc.deletes + sc.replaces
}

// Counts returns per-kind operation tallies
func (sc *EditScript) Counts() (adds, deletes, replaces int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.adds, sc.deletes, sc.replaces
}

func (sc *EditScript) recordAdd(p Path, v interface{}) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.deltas = append(sc.deltas, &Delta{Type: DTAdd, Path: p, Value: v})
	sc.adds++
}

func (sc *EditScript) recordDelete(p Path) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.deltas = append(sc.deltas, &Delta{Type: DTDelete, Path: p})
	sc.deletes++
}

func (sc *EditScript) recordReplace(p Path, v interface{}) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.deltas = append(sc.deltas, &Delta{Type: DTReplace, Path: p, Value: v})
	sc.replaces++
}
