package arrowbuf

import (
	"reflect"

	"github.com/pkg/errors"
)

var kindTypes = map[reflect.Kind]DataType{
	reflect.Bool:    TypeBool,
	reflect.Int8:    TypeInt8,
	reflect.Uint8:   TypeUint8,
	reflect.Int16:   TypeInt16,
	reflect.Uint16:  TypeUint16,
	reflect.Int32:   TypeInt32,
	reflect.Uint32:  TypeUint32,
	reflect.Int64:   TypeInt64,
	reflect.Uint64:  TypeUint64,
	reflect.Float32: TypeFloat32,
	reflect.Float64: TypeFloat64,
}

// DecodeInto decodes d into a caller-supplied slice pointer chosen at
// runtime ( *[]int32, *[]float64, *[]bool, ... ) and returns the
// validity mask. The slice's element type must match d.Type.
func DecodeInto(d Descriptor, out any) ([]bool, error) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return nil, ErrNotSlicePtr
	}
	dst := v.Elem()
	want, ok := kindTypes[dst.Type().Elem().Kind()]
	if !ok || want != d.Type {
		return nil, errors.Wrapf(ErrUnsupportedWidth, "cannot decode %s into %s", d.Type, dst.Type())
	}
	switch d.Type {
	case TypeBool:
		values, mask, err := DecodeBool(d)
		if err != nil {
			return nil, err
		}
		return mask, setSlice(dst, values)
	case TypeInt8:
		return decodeSlice[int8](d, dst)
	case TypeUint8:
		return decodeSlice[uint8](d, dst)
	case TypeInt16:
		return decodeSlice[int16](d, dst)
	case TypeUint16:
		return decodeSlice[uint16](d, dst)
	case TypeInt32:
		return decodeSlice[int32](d, dst)
	case TypeUint32:
		return decodeSlice[uint32](d, dst)
	case TypeInt64:
		return decodeSlice[int64](d, dst)
	case TypeUint64:
		return decodeSlice[uint64](d, dst)
	case TypeFloat32:
		return decodeSlice[float32](d, dst)
	default:
		return decodeSlice[float64](d, dst)
	}
}

func decodeSlice[T Element](d Descriptor, dst reflect.Value) ([]bool, error) {
	values, mask, err := Decode[T](d)
	if err != nil {
		return nil, err
	}
	return mask, setSlice(dst, values)
}

func setSlice[T any](dst reflect.Value, values []T) error {
	sv := reflect.ValueOf(values)
	if !sv.Type().AssignableTo(dst.Type()) {
		// named element types ([]MyInt32 and the like)
		return errors.Wrapf(ErrUnsupportedWidth, "cannot assign %s to %s", sv.Type(), dst.Type())
	}
	dst.Set(sv)
	return nil
}
