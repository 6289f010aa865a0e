package arrowbuf

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/arrowbuf/internal/common"
)

// Encode packs values into an Arrow-layout descriptor: a little-endian
// data buffer padded to an 8-byte multiple and, when valid is non-nil,
// an LSB-first validity bitmap. valid must be nil or the same length as
// values. The descriptor has offset zero; callers slice by adjusting
// Offset/Len on the result.
func Encode[T Element](values []T, valid []bool) (Descriptor, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	d := Descriptor{Type: typeOf[T](), Len: len(values)}
	d.Data = make([]byte, pad8(len(values)*size))
	if len(values) > 0 {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*size)
		copy(d.Data, raw)
	}
	var err error
	d.Validity, err = packValidity(valid, len(values))
	if err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// EncodeBool packs booleans bit-packed, LSB-first, like the bitmap.
func EncodeBool(values []bool, valid []bool) (Descriptor, error) {
	d := Descriptor{Type: TypeBool, Len: len(values)}
	d.Data = make([]byte, pad8(common.BytesForBits(len(values))))
	for i, set := range values {
		if set {
			common.SetBit(d.Data, i)
		}
	}
	var err error
	d.Validity, err = packValidity(valid, len(values))
	if err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func packValidity(valid []bool, n int) ([]byte, error) {
	if valid == nil {
		return nil, nil
	}
	if len(valid) != n {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d values, %d validity flags", n, len(valid))
	}
	bm := make([]byte, pad8(common.BytesForBits(n)))
	for i, set := range valid {
		if set {
			common.SetBit(bm, i)
		}
	}
	return bm, nil
}

func pad8(n int) int {
	return (n + 7) &^ 7
}

func typeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case uint8:
		return TypeUint8
	case int16:
		return TypeInt16
	case uint16:
		return TypeUint16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUint32
	case int64:
		return TypeInt64
	case uint64:
		return TypeUint64
	case float32:
		return TypeFloat32
	default:
		return TypeFloat64
	}
}
