package gpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
)

// toBufferBytes flattens data into little-endian bytes in field order.
// Structs, arrays and slices are walked recursively.
func toBufferBytes(data any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeBufferBytes(reflect.ValueOf(data), buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBufferBytes(v reflect.Value, buf *bytes.Buffer) error {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return fmt.Errorf("nil %s", v.Type())
		}
		return writeBufferBytes(v.Elem(), buf)

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := writeBufferBytes(v.Index(i), buf); err != nil {
				return err
			}
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := writeBufferBytes(v.Field(i), buf); err != nil {
				return err
			}
		}

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		if err := binary.Write(buf, binary.LittleEndian, v.Interface()); err != nil {
			return fmt.Errorf("write %s: %w", v.Type(), err)
		}

	default:
		return fmt.Errorf("unsupported buffer element kind %s", v.Kind())
	}
	return nil
}
