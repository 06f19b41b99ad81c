package gf2

// NullSpace returns a basis of {x : m·x = 0} as the rows of a k×c matrix,
// k = c - rank(m). m is not modified.
//
// Implementation:
//   - Stage 1: reduce a copy of m to RREF in natural column order.
//   - Stage 2: for each free column f emit x with x[f]=1 and
//     x[pivot(i)] = rref[i][f] for every pivot row i.
//
// Complexity: O(r*c*min(r,c)/64 + k*r).
func (m *Dense) NullSpace() *Dense {
	var (
		red    = m.Clone()
		pivots = red.Echelonize()
		isPiv  = make([]bool, m.c)
		out    *Dense
		f, i   int
		k      int
	)
	for _, f = range pivots {
		isPiv[f] = true
	}
	out, _ = NewDense(m.c-len(pivots), m.c) // rank <= c
	for f = 0; f < m.c; f++ {
		if isPiv[f] {
			continue
		}
		out.rows[k].Set(uint(f))
		for i = range pivots {
			if red.rows[i].Test(uint(f)) {
				out.rows[k].Set(uint(pivots[i]))
			}
		}
		k++
	}

	return out
}
