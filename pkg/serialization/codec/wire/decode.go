package wire

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
)

// Unmarshaler is the interface implemented by types that can unmarshal a
// wire-encoded description of themselves.
type Unmarshaler interface {
	UnmarshalWire(data []byte) error
}

func Unmarshal(data []byte, dst interface{}) error {
	dstv := reflect.ValueOf(dst)
	if dstv.Kind() != reflect.Ptr || dstv.IsNil() {
		return ErrInvalidPointer
	}

	br := byteReader{Reader: bytes.NewReader(data)}
	return br.unmarshal(dstv.Elem())
}

// NewDecoder returns a Decoder that reads from reader.
func NewDecoder(reader io.Reader) *Decoder {
	return &Decoder{byteReader{Reader: reader}}
}

type Decoder struct {
	byteReader
}

func (d *Decoder) Decode(dst any) error {
	dstv := reflect.ValueOf(dst)
	if dstv.Kind() != reflect.Ptr || dstv.IsNil() {
		return ErrInvalidPointer
	}
	return d.unmarshal(dstv.Elem())
}

// DecodeFixedWidth reads a length-byte little-endian integer into dst,
// which must point to an unsigned integer type.
func (d *Decoder) DecodeFixedWidth(dst any, length uint8) error {
	dstv := reflect.ValueOf(dst)
	if dstv.Kind() != reflect.Ptr || dstv.IsNil() {
		return ErrInvalidPointer
	}
	return d.decodeFixedWidth(dstv.Elem(), length)
}

type byteReader struct {
	io.Reader
}

func (br *byteReader) unmarshal(value reflect.Value) error {
	if value.CanAddr() {
		if unmarshaler, ok := value.Addr().Interface().(Unmarshaler); ok {
			return br.decodeViaUnmarshaler(unmarshaler)
		}
	}

	switch value.Interface().(type) {
	case uint8, uint16, uint32, uint64:
		l, err := IntLength(value.Interface())
		if err != nil {
			return err
		}
		return br.decodeFixedWidth(value, l)
	case []byte:
		return br.decodeBytes(value)
	case string:
		return br.decodeString(value)
	case bool:
		return br.decodeBool(value)
	default:
		return br.handleReflectTypes(value)
	}
}

// decodeViaUnmarshaler drains the remaining bytes into the custom
// unmarshaler; it is only usable as the outermost value of a decode.
func (br *byteReader) decodeViaUnmarshaler(u Unmarshaler) error {
	rest, err := io.ReadAll(br.Reader)
	if err != nil {
		return fmt.Errorf(ErrReadingBytes, err)
	}
	return u.UnmarshalWire(rest)
}

func (br *byteReader) handleReflectTypes(value reflect.Value) error {
	switch value.Kind() {
	case reflect.Bool, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return br.decodeCustomPrimitive(value)
	case reflect.Ptr:
		return br.decodePointer(value)
	case reflect.Struct:
		return br.decodeStruct(value)
	case reflect.Array:
		return br.decodeArray(value)
	case reflect.Slice:
		if value.Type() == reflect.TypeOf([]byte{}) {
			return br.decodeBytes(value)
		}
		return br.decodeSlice(value)
	default:
		return fmt.Errorf(ErrUnsupportedType, value.Interface())
	}
}

func (br *byteReader) decodeCustomPrimitive(value reflect.Value) error {
	inType := value.Type()

	var temp reflect.Value
	switch inType.Kind() {
	case reflect.Bool:
		temp = reflect.New(reflect.TypeOf(false))
	case reflect.Uint8:
		temp = reflect.New(reflect.TypeOf(uint8(0)))
	case reflect.Uint16:
		temp = reflect.New(reflect.TypeOf(uint16(0)))
	case reflect.Uint32:
		temp = reflect.New(reflect.TypeOf(uint32(0)))
	case reflect.Uint64:
		temp = reflect.New(reflect.TypeOf(uint64(0)))
	default:
		return fmt.Errorf(ErrUnsupportedType, value.Interface())
	}

	if err := br.unmarshal(temp.Elem()); err != nil {
		return err
	}

	value.Set(temp.Elem().Convert(inType))
	return nil
}

func (br *byteReader) readOctet() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(br.Reader, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (br *byteReader) decodeFixedWidth(value reflect.Value, length uint8) error {
	if length == 0 || length > 8 {
		return ErrInvalidWidth
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(br.Reader, buf); err != nil {
		return fmt.Errorf(ErrReadingBytes, err)
	}

	var u uint64
	FixedWidth[uint64]{}.Deserialize(buf, &u)

	switch value.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value.SetUint(u)
		return nil
	default:
		return fmt.Errorf(ErrUnsupportedType, value.Interface())
	}
}

func (br *byteReader) decodeBool(value reflect.Value) error {
	b, err := br.readOctet()
	if err != nil {
		return fmt.Errorf(ErrReadingByte, err)
	}

	switch b {
	case 0x01:
		value.SetBool(true)
	case 0x00:
		value.SetBool(false)
	default:
		return ErrDecodingBool
	}
	return nil
}

func (br *byteReader) decodeLength() (uint64, error) {
	var l uint64
	if err := DeserializeCompact(br.Reader, &l); err != nil {
		return 0, fmt.Errorf(ErrDecodingCompact, err)
	}
	return l, nil
}

func (br *byteReader) decodeBytes(value reflect.Value) error {
	l, err := br.decodeLength()
	if err != nil {
		return err
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(br.Reader, buf); err != nil {
		return fmt.Errorf(ErrReadingBytes, err)
	}
	value.SetBytes(buf)
	return nil
}

func (br *byteReader) decodeString(value reflect.Value) error {
	l, err := br.decodeLength()
	if err != nil {
		return err
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(br.Reader, buf); err != nil {
		return fmt.Errorf(ErrReadingBytes, err)
	}
	value.SetString(string(buf))
	return nil
}

func (br *byteReader) decodePointer(value reflect.Value) error {
	marker, err := br.readOctet()
	if err != nil {
		return fmt.Errorf(ErrReadingByte, err)
	}

	switch marker {
	case AbsentMarker:
		if !value.IsNil() {
			value.Set(reflect.Zero(value.Type()))
		}
		return nil
	case PresentMarker:
		if value.IsNil() {
			value.Set(reflect.New(value.Type().Elem()))
		}
		return br.unmarshal(value.Elem())
	default:
		return ErrInvalidMarker
	}
}

func (br *byteReader) decodeSlice(value reflect.Value) error {
	l, err := br.decodeLength()
	if err != nil {
		return err
	}
	elemType := value.Type().Elem()
	temp := reflect.MakeSlice(value.Type(), 0, int(l))
	for i := uint64(0); i < l; i++ {
		elem := reflect.New(elemType).Elem()
		if err := br.unmarshal(elem); err != nil {
			return err
		}
		temp = reflect.Append(temp, elem)
	}
	value.Set(temp)
	return nil
}

func (br *byteReader) decodeArray(value reflect.Value) error {
	temp := reflect.New(value.Type()).Elem()
	for i := 0; i < temp.Len(); i++ {
		if err := br.unmarshal(temp.Index(i)); err != nil {
			return err
		}
	}
	value.Set(temp)
	return nil
}

func (br *byteReader) decodeStruct(value reflect.Value) error {
	t := value.Type()
	for i := 0; i < value.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if err := br.unmarshal(value.Field(i)); err != nil {
			return fmt.Errorf(ErrDecodingStructField, t.Field(i).Name, err)
		}
	}
	return nil
}
