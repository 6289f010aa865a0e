// Package arrowbuf decodes Arrow-layout primitive arrays into native Go
// slices. An array arrives as a packed little-endian data buffer plus an
// optional bit-packed validity bitmap; both may start at a non-zero
// element offset and may carry trailing padding. Decoding yields a fresh
// value slice and a parallel []bool mask, neither of which aliases the
// input buffers.
package arrowbuf

import (
	"errors"
)

var (
	ErrInsufficientBuffer = errors.New("buffer shorter than offset+length requires")
	ErrUnsupportedWidth   = errors.New("unsupported element width")
	ErrNegativeCount      = errors.New("negative length or offset")
	ErrLengthMismatch     = errors.New("values and validity length mismatch")
	ErrNotSlicePtr        = errors.New("expected pointer to slice")
	ErrCorruptBuffer      = errors.New("corrupt compressed buffer")
)

// DataType identifies the element type of a primitive columnar array.
type DataType int

const (
	TypeBool DataType = iota
	TypeInt8
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
)

// BitWidth returns the storage width of one element in bits.
func (t DataType) BitWidth() int {
	if t == TypeBool {
		return 1
	}
	return t.ByteWidth() * 8
}

// ByteWidth returns the storage width of one element in bytes, or -1 for
// types that are bit-packed (TypeBool) or unknown.
func (t DataType) ByteWidth() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return -1
	}
}

func (t DataType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// Codec selects optional per-buffer compression.
type Codec uint16

const (
	CompRaw Codec = iota
	CompZstd
)

// Descriptor describes one primitive columnar array. Data holds Len
// elements starting at element Offset; Validity, when non-nil, is an
// LSB-first bitmap whose bit Offset+i covers logical element i. A nil
// Validity means every element is valid. Both buffers may be longer than
// strictly required; the extra bytes are never read.
type Descriptor struct {
	Type     DataType
	Len      int
	Offset   int
	Data     []byte
	Validity []byte
	Codec    Codec
}
