package arrowbuf

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/arrowbuf/internal/common"
)

// Element is the set of Go types decodable from byte-width buffers.
// Booleans are bit-packed on the wire and go through DecodeBool instead.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Decode converts the array described by d into a fresh value slice and
// a parallel validity mask. Valid slots carry the exact little-endian
// bit pattern stored in the data buffer; slots the mask reports invalid
// hold whatever bytes the buffer had there and must not be interpreted.
// Trailing padding on either buffer is ignored. The outputs do not
// alias d's buffers.
func Decode[T Element](d Descriptor) ([]T, []bool, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if d.Type.ByteWidth() != size {
		return nil, nil, errors.Wrapf(ErrUnsupportedWidth, "cannot decode %s into %d-byte elements", d.Type, size)
	}
	if d.Len < 0 || d.Offset < 0 {
		return nil, nil, errors.Wrapf(ErrNegativeCount, "length %d offset %d", d.Len, d.Offset)
	}
	if d.Len == 0 {
		// Zero-length arrays may come with arbitrary (even too-short)
		// backing buffers; no buffer access happens at all.
		return []T{}, []bool{}, nil
	}
	data, err := d.rawBuffer(d.Data)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "data buffer")
	}
	if d.Offset+d.Len < 0 || d.Offset+d.Len > math.MaxInt/size {
		return nil, nil, errors.Wrapf(ErrInsufficientBuffer, "element window %d+%d overflows", d.Offset, d.Len)
	}
	need := (d.Offset + d.Len) * size
	if len(data) < need {
		return nil, nil, errors.Wrapf(ErrInsufficientBuffer, "data buffer holds %d bytes, need %d", len(data), need)
	}
	values := make([]T, d.Len)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), d.Len*size)
	copy(raw, data[d.Offset*size:need])
	mask, err := d.decodeValidity()
	if err != nil {
		return nil, nil, err
	}
	return values, mask, nil
}

// DecodeBool converts a bit-packed boolean array. The data buffer
// follows the same LSB-first rule as the validity bitmap: value i lives
// at bit Offset+i.
func DecodeBool(d Descriptor) ([]bool, []bool, error) {
	if d.Type != TypeBool {
		return nil, nil, errors.Wrapf(ErrUnsupportedWidth, "cannot decode %s as bool", d.Type)
	}
	if d.Len < 0 || d.Offset < 0 {
		return nil, nil, errors.Wrapf(ErrNegativeCount, "length %d offset %d", d.Len, d.Offset)
	}
	if d.Len == 0 {
		return []bool{}, []bool{}, nil
	}
	data, err := d.rawBuffer(d.Data)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "data buffer")
	}
	if err := checkBits(data, d.Offset, d.Len, "data buffer"); err != nil {
		return nil, nil, err
	}
	values := common.UnpackBits(data, d.Offset, d.Len)
	mask, err := d.decodeValidity()
	if err != nil {
		return nil, nil, err
	}
	return values, mask, nil
}

// DecodeAny dispatches on d.Type once and returns the value slice as an
// any ([]int8, []uint8, ... []float64 or []bool).
func DecodeAny(d Descriptor) (any, []bool, error) {
	switch d.Type {
	case TypeBool:
		return erase(DecodeBool(d))
	case TypeInt8:
		return erase(Decode[int8](d))
	case TypeUint8:
		return erase(Decode[uint8](d))
	case TypeInt16:
		return erase(Decode[int16](d))
	case TypeUint16:
		return erase(Decode[uint16](d))
	case TypeInt32:
		return erase(Decode[int32](d))
	case TypeUint32:
		return erase(Decode[uint32](d))
	case TypeInt64:
		return erase(Decode[int64](d))
	case TypeUint64:
		return erase(Decode[uint64](d))
	case TypeFloat32:
		return erase(Decode[float32](d))
	case TypeFloat64:
		return erase(Decode[float64](d))
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedWidth, "unknown type %d", int(d.Type))
	}
}

func erase[T any](values []T, mask []bool, err error) (any, []bool, error) {
	if err != nil {
		return nil, nil, err
	}
	return values, mask, nil
}

// decodeValidity unpacks the validity bitmap for elements
// [Offset, Offset+Len). A nil bitmap means all valid.
func (d Descriptor) decodeValidity() ([]bool, error) {
	if d.Validity == nil {
		mask := make([]bool, d.Len)
		for i := range mask {
			mask[i] = true
		}
		return mask, nil
	}
	v, err := d.rawBuffer(d.Validity)
	if err != nil {
		return nil, errors.WithMessage(err, "validity bitmap")
	}
	if err := checkBits(v, d.Offset, d.Len, "validity bitmap"); err != nil {
		return nil, err
	}
	return common.UnpackBits(v, d.Offset, d.Len), nil
}

func checkBits(b []byte, offset, n int, what string) error {
	sum := offset + n
	if sum < 0 || sum > math.MaxInt-7 {
		return errors.Wrapf(ErrInsufficientBuffer, "%s: bit window %d+%d overflows", what, offset, n)
	}
	need := common.BytesForBits(sum)
	if len(b) < need {
		return errors.Wrapf(ErrInsufficientBuffer, "%s holds %d bytes, need %d", what, len(b), need)
	}
	return nil
}
