package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/qdist/csr"
)

const (
	bannerPrefix = "%%MatrixMarket"
	header       = bannerPrefix + " matrix coordinate integer general"

	// maxPrealloc bounds the entry buffer reserved from the size line.
	maxPrealloc = 1 << 16
)

// Read parses a Matrix Market coordinate matrix from r. With transpose set
// the rows and columns are swapped while reading.
func Read(r io.Reader, transpose bool) (*csr.Matrix, error) {
	var (
		sc      = bufio.NewScanner(r)
		line    int
		pattern bool
		err     error
	)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	// next returns the next line that is neither blank nor a comment.
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			s := strings.TrimSpace(sc.Text())
			if s == "" || strings.HasPrefix(s, "%") {
				continue
			}

			return s, true
		}

		return "", false
	}

	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return nil, fmt.Errorf("mmio.Read: %w", err)
		}

		return nil, fmt.Errorf("mmio.Read: empty input: %w", ErrBanner)
	}
	line++
	if pattern, err = parseBanner(sc.Text()); err != nil {
		return nil, err
	}

	s, ok := next()
	if !ok {
		return nil, fmt.Errorf("mmio.Read: line %d: %w", line, ErrSize)
	}
	rows, cols, nz, err := parseSize(s)
	if err != nil {
		return nil, fmt.Errorf("mmio.Read: line %d %q: %w", line, s, err)
	}

	pairs := make([]csr.Pair, 0, min(nz, maxPrealloc))
	for k := 0; k < nz; k++ {
		if s, ok = next(); !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("mmio.Read: %w", err)
			}

			return nil, fmt.Errorf("mmio.Read: %d of %d entries: %w", k, nz, ErrTruncated)
		}
		i, j, err := parseEntry(s, pattern)
		if err != nil {
			return nil, fmt.Errorf("mmio.Read: line %d %q: %w", line, s, err)
		}
		if i < 1 || i > rows || j < 1 || j > cols {
			return nil, fmt.Errorf("mmio.Read: line %d: (%d,%d) outside %dx%d: %w", line, i, j, rows, cols, ErrEntry)
		}
		if transpose {
			i, j = j, i
		}
		pairs = append(pairs, csr.Pair{Row: i - 1, Col: j - 1})
	}
	if transpose {
		rows, cols = cols, rows
	}

	return csr.FromPairs(rows, cols, pairs)
}

// parseBanner checks the header line and reports whether the field is pattern.
func parseBanner(s string) (bool, error) {
	f := strings.Fields(strings.ToLower(s))
	if len(f) != 5 || f[0] != strings.ToLower(bannerPrefix) {
		return false, fmt.Errorf("mmio.Read: %q: %w", s, ErrBanner)
	}
	if f[1] != "matrix" || f[2] != "coordinate" || f[4] != "general" {
		return false, fmt.Errorf("mmio.Read: %q: %w", s, ErrBanner)
	}
	switch f[3] {
	case "integer":
		return false, nil
	case "pattern":
		return true, nil
	default:
		return false, fmt.Errorf("mmio.Read: field %q: %w", f[3], ErrBanner)
	}
}

func parseSize(s string) (rows, cols, nz int, err error) {
	f := strings.Fields(s)
	if len(f) != 3 {
		return 0, 0, 0, ErrSize
	}
	v := make([]int, 3)
	for i := range f {
		if v[i], err = strconv.Atoi(f[i]); err != nil || v[i] < 0 {
			return 0, 0, 0, ErrSize
		}
	}

	if v[2] > 0 && (v[0] == 0 || v[1] == 0 || (v[2]-1)/v[1] >= v[0]) {
		return 0, 0, 0, ErrSize // more entries than cells
	}

	return v[0], v[1], v[2], nil
}

func parseEntry(s string, pattern bool) (i, j int, err error) {
	f := strings.Fields(s)
	want := 3
	if pattern {
		want = 2
	}
	if len(f) != want {
		return 0, 0, ErrEntry
	}
	if i, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, ErrEntry
	}
	if j, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, ErrEntry
	}
	if !pattern && f[2] != "1" {
		return 0, 0, ErrEntry
	}

	return i, j, nil
}

// Write emits m in the integer coordinate format, entries in row order.
func Write(w io.Writer, m *csr.Matrix) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	fmt.Fprintf(bw, "%d %d %d\n", m.Rows(), m.Cols(), m.NNZ())
	for _, p := range m.Pairs() {
		fmt.Fprintf(bw, "%d %d 1\n", p.Row+1, p.Col+1)
	}

	return bw.Flush()
}
