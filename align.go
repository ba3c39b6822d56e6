package structdiff

// alignOp classifies a single token in an alignment trace
type alignOp int8

const (
	// alignCopy keeps a run of equal elements from both sequences
	alignCopy alignOp = iota
	// alignDelete drops one element of a
	alignDelete
	// alignInsert takes one element of b
	alignInsert
	// alignReplace substitutes b's element for a's at one position; never
	// produced by the search itself, only by coalescing a delete+insert pair
	alignReplace
)

// alignTok is one move in an alignment trace. run is meaningful only for
// copies.
type alignTok struct {
	op  alignOp
	run int
}

// align computes a minimal insert/delete trace turning a into b, then
// coalesces unambiguous delete+insert pairs into positional replacements.
// The trace is deterministic: aligning the same sequences always yields the
// same tokens.
func align(a, b []interface{}) []alignTok {
	var toks []alignTok
	if len(a) >= len(b) {
		toks = alignForward(a, b)
	} else {
		// explore the smaller dimension for O(N·P) behavior, then flip the
		// off-diagonal moves back
		toks = alignForward(b, a)
		for i, t := range toks {
			switch t.op {
			case alignDelete:
				toks[i].op = alignInsert
			case alignInsert:
				toks[i].op = alignDelete
			}
		}
	}
	return coalesce(toks)
}

// alignForward runs the furthest-reaching-point search. Requires
// len(a) >= len(b).
//
// Positions in a and b are related by the diagonal k = i - j. For each edit
// budget p we compute, per diagonal, the furthest position of a reachable
// with at most p off-diagonal moves: the better of a delete move arriving
// from diagonal k-1 and an insert move arriving from k+1, followed by a
// greedy "snake" through equal elements. The search ends when diagonal
// n - m has consumed all of a (and with it, all of b).
func alignForward(a, b []interface{}) []alignTok {
	n, m := len(a), len(b)
	delta := n - m

	// diagonals range over [-p, delta+p]; offset maps them onto slices.
	// fp[k] == -1 marks a diagonal not yet reached.
	offset := m + 1
	width := n + m + 3
	fp := make([]int, width)
	for i := range fp {
		fp[i] = -1
	}
	routes := make([][]alignTok, width)

	// snake extends x through the maximal run of pairwise-equal elements on
	// diagonal k, appending a single copy token for the whole run
	snake := func(k, x int, route []alignTok) (int, []alignTok) {
		run := 0
		for x < n && x-k < m && eq(a[x], b[x-k]) {
			x++
			run++
		}
		if run > 0 {
			route = append(route, alignTok{op: alignCopy, run: run})
		}
		return x, route
	}

	advance := func(k int) {
		var (
			x     int
			route []alignTok
		)
		lo, hi := fp[k-1+offset], fp[k+1+offset]
		switch {
		case lo < 0 && hi < 0:
			// the origin: only diagonal 0 at budget 0 has no predecessor
			x = 0
		case lo+1 > hi:
			x = lo + 1
			route = append(cloneToks(routes[k-1+offset]), alignTok{op: alignDelete})
		default:
			// ties prefer the insert move so that a substitution surfaces
			// as delete-then-insert, which coalescing can merge
			x = hi
			route = append(cloneToks(routes[k+1+offset]), alignTok{op: alignInsert})
		}
		x, route = snake(k, x, route)
		fp[k+offset] = x
		routes[k+offset] = route
	}

	for p := 0; ; p++ {
		for k := -p; k <= delta-1; k++ {
			advance(k)
		}
		for k := delta + p; k >= delta+1; k-- {
			advance(k)
		}
		advance(delta)
		if fp[delta+offset] >= n {
			return routes[delta+offset]
		}
	}
}

func cloneToks(toks []alignTok) []alignTok {
	return append(make([]alignTok, 0, len(toks)+2), toks...)
}

// coalesce merges each lone delete immediately followed by an insert into a
// single replace token. A delete preceded by another delete is left alone:
// regrouping part of a longer deletion run would be ambiguous.
func coalesce(toks []alignTok) []alignTok {
	out := make([]alignTok, 0, len(toks))
	for i := 0; i < len(toks); {
		if toks[i].op == alignDelete && i+1 < len(toks) && toks[i+1].op == alignInsert &&
			(i == 0 || toks[i-1].op != alignDelete) {
			out = append(out, alignTok{op: alignReplace})
			i += 2
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return out
}
