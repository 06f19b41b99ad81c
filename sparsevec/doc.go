// Package sparsevec implements the ordered sparse vector used as error
// support and syndrome storage by the connected-cluster search: a sorted set
// of column (or check) indices with a capacity fixed at allocation.
//
// Operations: Search, Insert (value must be absent), DeleteAt, FindDelete,
// and CombineRow, which writes base ⊕ row(m) into a second vector.
//
// Misuse (inserting a present value, exceeding capacity, aliasing the
// CombineRow operands) is not checked in regular builds. Build with
// -tags qdistdebug to turn these into panics.
package sparsevec
