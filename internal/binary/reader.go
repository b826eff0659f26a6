// Package binary provides bounds-checked big-endian reads over an io.ReaderAt.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/simonhull/listprops/internal/types"
)

// Unsigned is the set of fixed-width integers the readers decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the readable size in bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from offset off. what names the field for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Read reads a big-endian value of type T from the given offset.
func Read[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return 0, err
	}

	var val T
	switch len(buf) {
	case 1:
		val = T(buf[0])
	case 2:
		val = T(binary.BigEndian.Uint16(buf))
	case 4:
		val = T(binary.BigEndian.Uint32(buf))
	default:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T Unsigned](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		return 0, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf := make([]byte, length)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return "", err
	}

	r.offset += int64(length)
	return string(buf), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// After the first failure every read returns the zero value.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
func ReadChained[T Unsigned](cr *ChainReader, what string) T {
	if cr.err != nil {
		return 0
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		return 0
	}

	return val
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(length, what)
	if err != nil {
		cr.err = err
		return ""
	}

	return val
}

// Err returns the accumulated error, if any.
func (cr *ChainReader) Err() error {
	return cr.err
}
