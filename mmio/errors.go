package mmio

import "errors"

var (
	// ErrBanner indicates a missing or unsupported %%MatrixMarket header.
	// Only "matrix coordinate integer general" and "matrix coordinate pattern general" are accepted.
	ErrBanner = errors.New("mmio: unsupported Matrix Market banner")

	// ErrSize indicates a malformed or missing size line.
	ErrSize = errors.New("mmio: malformed size line")

	// ErrEntry indicates a malformed entry, a value other than 1, or a
	// coordinate outside the declared shape.
	ErrEntry = errors.New("mmio: malformed entry")

	// ErrTruncated indicates fewer entries than the size line declares.
	ErrTruncated = errors.New("mmio: unexpected end of input")
)
