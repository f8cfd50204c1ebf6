package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"reflect"
)

// Marshaler is the interface implemented by types that can marshal
// themselves into valid wire-encoded data.
type Marshaler interface {
	MarshalWire() ([]byte, error)
}

func Marshal(v interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	ew := byteWriter{
		Writer: buffer,
	}
	if err := ew.marshal(v); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

type byteWriter struct {
	io.Writer
}

func (bw *byteWriter) marshal(in interface{}) error {
	if marshaler, ok := in.(Marshaler); ok {
		b, err := marshaler.MarshalWire()
		if err != nil {
			return err
		}
		_, err = bw.Write(b)
		return err
	}

	switch v := in.(type) {
	case uint8, uint16, uint32, uint64:
		l, err := IntLength(v)
		if err != nil {
			return err
		}
		return bw.encodeFixedWidth(v, l)
	case []byte:
		return bw.encodeBytes(v)
	case string:
		return bw.encodeBytes([]byte(v))
	case bool:
		return bw.encodeBool(v)
	default:
		return bw.handleReflectTypes(v)
	}
}

func (bw *byteWriter) handleReflectTypes(in interface{}) error {
	val := reflect.ValueOf(in)
	switch val.Kind() {
	case reflect.Bool, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return bw.encodeCustomPrimitive(in)
	case reflect.Ptr:
		if err := bw.writePresenceMarker(val.IsNil()); err != nil {
			return err
		}
		if val.IsNil() {
			return nil
		}
		return bw.marshal(val.Elem().Interface())
	case reflect.Struct:
		return bw.encodeStruct(in)
	case reflect.Array:
		return bw.encodeArray(in)
	case reflect.Slice:
		if v, ok := in.([]byte); ok {
			return bw.encodeBytes(v)
		}
		return bw.encodeSlice(in)
	default:
		return fmt.Errorf(ErrUnsupportedType, in)
	}
}

// encodeCustomPrimitive converts named bool/uint types to their underlying
// primitive before encoding.
func (bw *byteWriter) encodeCustomPrimitive(in interface{}) error {
	val := reflect.ValueOf(in)
	switch val.Kind() {
	case reflect.Bool:
		in = val.Convert(reflect.TypeOf(false)).Interface()
	case reflect.Uint8:
		in = val.Convert(reflect.TypeOf(uint8(0))).Interface()
	case reflect.Uint16:
		in = val.Convert(reflect.TypeOf(uint16(0))).Interface()
	case reflect.Uint32:
		in = val.Convert(reflect.TypeOf(uint32(0))).Interface()
	case reflect.Uint64:
		in = val.Convert(reflect.TypeOf(uint64(0))).Interface()
	default:
		return fmt.Errorf(ErrUnsupportedType, in)
	}

	return bw.marshal(in)
}

func (bw *byteWriter) encodeFixedWidth(i interface{}, l uint8) error {
	val := reflect.ValueOf(i)
	switch val.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, err := bw.Write(serializeFixedWidth(val.Uint(), l))
		return err
	default:
		return fmt.Errorf(ErrUnsupportedType, i)
	}
}

func (bw *byteWriter) encodeBool(b bool) error {
	var err error
	switch b {
	case true:
		_, err = bw.Write([]byte{0x01})
	case false:
		_, err = bw.Write([]byte{0x00})
	}

	return err
}

func (bw *byteWriter) encodeBytes(b []byte) error {
	if err := bw.encodeLength(len(b)); err != nil {
		return err
	}

	_, err := bw.Write(b)
	return err
}

func (bw *byteWriter) encodeLength(l int) error {
	if l > math.MaxUint32 {
		return ErrLengthExceedsLimit
	}
	_, err := bw.Write(SerializeCompact(uint64(l)))
	return err
}

func (bw *byteWriter) encodeSlice(in interface{}) error {
	v := reflect.ValueOf(in)
	if err := bw.encodeLength(v.Len()); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if err := bw.marshal(v.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// encodeArray encodes fixed-size arrays element by element, no length
// prefix. Byte arrays therefore land on the wire verbatim.
func (bw *byteWriter) encodeArray(in interface{}) error {
	v := reflect.ValueOf(in)
	for i := 0; i < v.Len(); i++ {
		if err := bw.marshal(v.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func (bw *byteWriter) encodeStruct(in interface{}) error {
	v := reflect.ValueOf(in)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if err := bw.marshal(v.Field(i).Interface()); err != nil {
			return fmt.Errorf(ErrEncodingStructField, t.Field(i).Name, err)
		}
	}
	return nil
}

func (bw *byteWriter) writePresenceMarker(isNil bool) error {
	marker := PresentMarker
	if isNil {
		marker = AbsentMarker
	}
	_, err := bw.Write([]byte{marker})
	return err
}
