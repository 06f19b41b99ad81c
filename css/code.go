package css

import (
	"fmt"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/gf2"
)

// Code is a binary linear code, or one half of a CSS quantum code, prepared
// for distance search.
//
//   - H: check matrix; codewords are the v with H·v = 0.
//   - G: dual check matrix (quantum only, optional once L is known).
//   - L: logical basis (quantum only). A codeword v is nontrivial iff it has
//     odd overlap with some row of L. L == nil marks a classical code.
type Code struct {
	H *csr.Matrix
	G *csr.Matrix
	L *csr.Matrix
}

// NewClassical wraps a classical check matrix.
func NewClassical(h *csr.Matrix) (*Code, error) {
	if h == nil {
		return nil, fmt.Errorf("NewClassical: %w", ErrNilMatrix)
	}

	return &Code{H: h}, nil
}

// NewWithDual assembles a CSS code from H and its dual check matrix G.
// The columns must agree and H·Gᵀ must vanish; L is derived with Logicals.
//
// Errors: ErrNilMatrix, ErrColumnMismatch, ErrNotOrthogonal, ErrNoLogicals.
func NewWithDual(h, g *csr.Matrix) (*Code, error) {
	if h == nil || g == nil {
		return nil, fmt.Errorf("NewWithDual: %w", ErrNilMatrix)
	}
	if h.Cols() != g.Cols() {
		return nil, fmt.Errorf("NewWithDual: H[%d,%d] vs G[%d,%d]: %w",
			h.Rows(), h.Cols(), g.Rows(), g.Cols(), ErrColumnMismatch)
	}
	nz, err := csr.ProductNonZero(h, g)
	if err != nil {
		return nil, fmt.Errorf("NewWithDual: %w", err)
	}
	if nz {
		return nil, fmt.Errorf("NewWithDual: %w", ErrNotOrthogonal)
	}
	l, err := Logicals(h, g)
	if err != nil {
		return nil, fmt.Errorf("NewWithDual: %w", err)
	}
	if l.Rows() == 0 {
		return nil, fmt.Errorf("NewWithDual: %w", ErrNoLogicals)
	}

	return &Code{H: h, G: g, L: l}, nil
}

// NewWithLogicals assembles a CSS code from H and an explicit logical basis.
//
// Errors: ErrNilMatrix, ErrColumnMismatch, ErrNoLogicals.
func NewWithLogicals(h, l *csr.Matrix) (*Code, error) {
	if h == nil || l == nil {
		return nil, fmt.Errorf("NewWithLogicals: %w", ErrNilMatrix)
	}
	if h.Cols() != l.Cols() {
		return nil, fmt.Errorf("NewWithLogicals: H[%d,%d] vs L[%d,%d]: %w",
			h.Rows(), h.Cols(), l.Rows(), l.Cols(), ErrColumnMismatch)
	}
	if l.Rows() == 0 {
		return nil, fmt.Errorf("NewWithLogicals: %w", ErrNoLogicals)
	}

	return &Code{H: h, L: l}, nil
}

// New dispatches on which optional matrices are present: neither gives a
// classical code, G derives L, L is taken as given. Supplying both is
// rejected.
//
// Errors: ErrBothDualAndLogicals plus those of the specific constructors.
func New(h, g, l *csr.Matrix) (*Code, error) {
	switch {
	case g != nil && l != nil:
		return nil, fmt.Errorf("css.New: %w", ErrBothDualAndLogicals)
	case g != nil:
		return NewWithDual(h, g)
	case l != nil:
		return NewWithLogicals(h, l)
	default:
		return NewClassical(h)
	}
}

// N is the block length (number of columns of H).
func (c *Code) N() int { return c.H.Cols() }

// IsClassical reports whether no logical basis is attached.
func (c *Code) IsClassical() bool { return c.L == nil }

// Dimension is the number of encoded bits: n - rank(H) for a classical
// code, the number of logical rows for a quantum one.
func (c *Code) Dimension() int {
	if c.IsClassical() {
		return c.N() - c.H.ToDense().Rank()
	}

	return c.L.Rows()
}

// Nontrivial reports whether a codeword with the given sorted support counts
// toward the distance: always for classical codes, odd overlap with some
// logical row for quantum ones.
func (c *Code) Nontrivial(support []int) bool {
	if c.L == nil {
		return true
	}

	return c.L.SyndromeNonZero(support)
}

// Logicals returns a basis of ker(G) modulo rowspace(H): rows v with
// G·v = 0 that are linearly independent of each other and of the rows of
// H. It has n - rank(H) - rank(G) rows when H·Gᵀ = 0.
//
// Implementation:
//   - Stage 1: seed an echelon basis with the rows of H.
//   - Stage 2: compute a null-space basis of G.
//   - Stage 3: reduce each null-space vector against the basis; keep the
//     nonzero remainders (they stay in ker(G)) as logical rows.
//
// Errors: ErrNilMatrix, ErrColumnMismatch.
// Complexity: O(n^2 * (rank(H)+rank(G)) / 64).
func Logicals(h, g *csr.Matrix) (*csr.Matrix, error) {
	if h == nil || g == nil {
		return nil, fmt.Errorf("Logicals: %w", ErrNilMatrix)
	}
	if h.Cols() != g.Cols() {
		return nil, fmt.Errorf("Logicals: %d vs %d: %w", h.Cols(), g.Cols(), ErrColumnMismatch)
	}
	var (
		n      = h.Cols()
		hd     = h.ToDense()
		red    = gf2.NewReducer(n)
		kernel = g.ToDense().NullSpace()
		rows   [][]int
		i      int
	)
	for i = 0; i < hd.Rows(); i++ {
		red.Add(hd.Row(i).Clone())
	}
	for i = 0; i < kernel.Rows(); i++ {
		v := kernel.Row(i).Clone()
		if !red.Add(v) {
			continue
		}
		rows = append(rows, gf2.Support(v, nil))
	}

	return csr.FromRows(n, rows)
}
