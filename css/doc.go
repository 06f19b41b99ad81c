// Package css assembles the code whose distance is searched.
//
// A classical binary code is given by its check matrix H. A quantum CSS
// code is given by H together with either the dual check matrix G
// (H·Gᵀ = 0) or a logical-operator basis L; when only G is known, L is
// derived as a basis of ker(G) modulo rowspace(H). The distance of the code
// is the minimum weight of v with H·v = 0 that is nontrivial: any nonzero v
// for a classical code, odd overlap with some row of L for a quantum one.
//
// Errors:
//
//   - ErrNilMatrix            missing H.
//   - ErrColumnMismatch       H and G (or L) differ in column count.
//   - ErrBothDualAndLogicals  G and L supplied together.
//   - ErrNotOrthogonal        H·Gᵀ != 0.
//   - ErrNoLogicals           quantum code with an empty logical basis.
//   - ErrNonCSS               non-CSS input requested.
package css
