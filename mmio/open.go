package mmio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/qdist/csr"
)

// Compression identifies a file codec by extension.
type Compression uint8

const (
	// CompressionNone reads and writes plain text.
	CompressionNone Compression = iota
	// CompressionGzip selects gzip (".gz").
	CompressionGzip
	// CompressionZstd selects zstd (".zst").
	CompressionZstd
	// CompressionLZ4 selects the lz4 frame format (".lz4").
	CompressionLZ4
)

// CompressionFor returns the codec implied by the extension of path.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// stack closes its closers in order and joins their errors.
type stack struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (s *stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Open opens path for reading and decompresses it according to its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := &stack{Reader: f}
	switch CompressionFor(path) {
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mmio.Open %s: %w", path, err)
		}
		s.Reader = gz
		s.closers = append(s.closers, gz.Close)
	case CompressionZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mmio.Open %s: %w", path, err)
		}
		s.Reader = dec
		s.closers = append(s.closers, func() error { dec.Close(); return nil })
	case CompressionLZ4:
		s.Reader = lz4.NewReader(f)
	}
	s.closers = append(s.closers, f.Close)

	return s, nil
}

// Create creates path for writing and compresses according to its extension.
// Close flushes the codec and then closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := &stack{Writer: f}
	switch CompressionFor(path) {
	case CompressionGzip:
		gz := gzip.NewWriter(f)
		s.Writer = gz
		s.closers = append(s.closers, gz.Close)
	case CompressionZstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mmio.Create %s: %w", path, err)
		}
		s.Writer = enc
		s.closers = append(s.closers, enc.Close)
	case CompressionLZ4:
		zw := lz4.NewWriter(f)
		s.Writer = zw
		s.closers = append(s.closers, zw.Close)
	}
	s.closers = append(s.closers, f.Close)

	return s, nil
}

// ReadFile opens path (see Open) and parses it with Read.
func ReadFile(path string, transpose bool) (*csr.Matrix, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	m, err := Read(rc, transpose)
	if cerr := rc.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteFile writes m to path (see Create and Write).
func WriteFile(path string, m *csr.Matrix) error {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	err = Write(wc, m)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}
