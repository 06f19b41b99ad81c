// Package perm provides column permutations over {0..n-1} in the two forms
// used by GF(2) elimination:
//
//   - pivot form (LAPACK style): step i swaps position i with position p[i] >= i.
//     Row reduction naturally produces this form.
//   - explicit form: value at position i is the destination index of i.
//     Codeword reconstruction and CSR column permutation consume this form.
//
// What:
//
//   - Identity, Validate, Inverse: explicit-form basics.
//   - ApplyPivots / ApplyPivotsTransposed: compose a pivot sequence into an
//     explicit permutation in forward or mirrored (transposed) order.
//   - NewRand, RandomPivots, RandomOrder: seeded random column orders.
//   - SkipPivots / SkipPivotsSearch: sorted complement of a pivot set.
//
// Complexity:
//
//   - Apply*, Inverse, Validate, RandomPivots, RandomOrder: O(n).
//   - SkipPivots: O(r log r + n); SkipPivotsSearch: O(r log r + n log r).
//
// Errors:
//
//   - ErrLengthMismatch  permutation and pivot sequences differ in length.
//   - ErrInvalidPivot    a pivot value lies outside its admissible range.
//   - ErrNotPermutation  an explicit sequence is not a bijection.
//   - ErrDuplicatePivot  a pivot column appears twice.
package perm
