package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Architecture selects the byte order a message definition declares for its
// multi-byte fields. The file header and both CRC fields are always
// little-endian regardless of this value.
type Architecture uint8

// Architecture values, as carried by a message definition's architecture
// byte (spec.md §4.4.5).
const (
	LittleEndian Architecture = 0
	BigEndian    Architecture = 1
)

func (a Architecture) byteOrder() binary.ByteOrder {
	if a == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// BaseType describes one of the 17 primitive FIT base types.
type BaseType struct {
	// Number is the base-type number occupying bits 0-4 of a field
	// definition's type byte.
	Number uint8

	// Field is the full base-type field byte, including the
	// endian-ability flag in bit 7.
	Field uint8

	// EndianCapable is true when this type's width is greater than one
	// byte and therefore subject to the owning message definition's
	// architecture.
	EndianCapable bool

	// Name is the FIT-level type name (sint8, uint16, enum, string, ...).
	Name string

	// Width is the element width in bytes. string is variable-width and
	// reports a width of 1 (spec.md §4.1).
	Width int

	// Invalid is the per-type invalid-value sentinel, typed to match the
	// scalar Go value this base type decodes to.
	Invalid interface{}

	decodeElem func(elem []byte, arch Architecture) interface{}
}

// baseTypes is keyed by base-type number (0-16). Values and widths are the
// FIT SDK's documented constants.
var baseTypes = map[uint8]*BaseType{
	0: {Number: 0, Field: 0x00, Name: "enum", Width: 1, Invalid: uint8(0xFF),
		decodeElem: func(b []byte, _ Architecture) interface{} { return b[0] }},
	1: {Number: 1, Field: 0x01, Name: "sint8", Width: 1, Invalid: int8(0x7F),
		decodeElem: func(b []byte, _ Architecture) interface{} { return int8(b[0]) }},
	2: {Number: 2, Field: 0x02, Name: "uint8", Width: 1, Invalid: uint8(0xFF),
		decodeElem: func(b []byte, _ Architecture) interface{} { return b[0] }},
	3: {Number: 3, Field: 0x83, EndianCapable: true, Name: "sint16", Width: 2, Invalid: int16(0x7FFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return int16(a.byteOrder().Uint16(b)) }},
	4: {Number: 4, Field: 0x84, EndianCapable: true, Name: "uint16", Width: 2, Invalid: uint16(0xFFFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint16(b) }},
	5: {Number: 5, Field: 0x85, EndianCapable: true, Name: "sint32", Width: 4, Invalid: int32(0x7FFFFFFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return int32(a.byteOrder().Uint32(b)) }},
	6: {Number: 6, Field: 0x86, EndianCapable: true, Name: "uint32", Width: 4, Invalid: uint32(0xFFFFFFFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint32(b) }},
	7: {Number: 7, Field: 0x07, Name: "string", Width: 1, Invalid: ""},
	8: {Number: 8, Field: 0x88, EndianCapable: true, Name: "float32", Width: 4, Invalid: float32(math.Float32frombits(0xFFFFFFFF)),
		decodeElem: func(b []byte, a Architecture) interface{} { return math.Float32frombits(a.byteOrder().Uint32(b)) }},
	9: {Number: 9, Field: 0x89, EndianCapable: true, Name: "float64", Width: 8, Invalid: float64(math.Float64frombits(0xFFFFFFFFFFFFFFFF)),
		decodeElem: func(b []byte, a Architecture) interface{} { return math.Float64frombits(a.byteOrder().Uint64(b)) }},
	10: {Number: 10, Field: 0x0A, Name: "uint8z", Width: 1, Invalid: uint8(0x00),
		decodeElem: func(b []byte, _ Architecture) interface{} { return b[0] }},
	11: {Number: 11, Field: 0x8B, EndianCapable: true, Name: "uint16z", Width: 2, Invalid: uint16(0x0000),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint16(b) }},
	12: {Number: 12, Field: 0x8C, EndianCapable: true, Name: "uint32z", Width: 4, Invalid: uint32(0x00000000),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint32(b) }},
	13: {Number: 13, Field: 0x0D, Name: "byte", Width: 1, Invalid: uint8(0xFF),
		decodeElem: func(b []byte, _ Architecture) interface{} { return b[0] }},
	14: {Number: 14, Field: 0x8E, EndianCapable: true, Name: "sint64", Width: 8, Invalid: int64(0x7FFFFFFFFFFFFFFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return int64(a.byteOrder().Uint64(b)) }},
	15: {Number: 15, Field: 0x8F, EndianCapable: true, Name: "uint64", Width: 8, Invalid: uint64(0xFFFFFFFFFFFFFFFF),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint64(b) }},
	16: {Number: 16, Field: 0x90, EndianCapable: true, Name: "uint64z", Width: 8, Invalid: uint64(0x0000000000000000),
		decodeElem: func(b []byte, a Architecture) interface{} { return a.byteOrder().Uint64(b) }},
}

// BaseTypeByNumber returns the catalog entry for a base-type number (bits
// 0-4 of a field definition's type byte).
func BaseTypeByNumber(n uint8) (*BaseType, bool) {
	bt, ok := baseTypes[n]
	return bt, ok
}

// BaseTypeByField returns the catalog entry whose base-type field byte
// (including the endian-ability bit) matches b.
func BaseTypeByField(b uint8) (*BaseType, bool) {
	for _, bt := range baseTypes {
		if bt.Field == b {
			return bt, true
		}
	}
	return nil, false
}

// Value is the decoded content of one field: either a single scalar or an
// ordered sequence of scalars of the same base type.
type Value struct {
	BaseType *BaseType
	IsArray  bool
	Scalar   interface{}
	Array    []interface{}
	Text     string
}

// Decode turns raw field bytes into a Value using the base type named by
// baseTypeNumber, per spec.md §4.1 (C1). arch selects byte order for
// endian-capable types; it is ignored otherwise.
func Decode(baseTypeNumber uint8, data []byte, arch Architecture) (Value, error) {
	bt, ok := BaseTypeByNumber(baseTypeNumber)
	if !ok {
		return Value{}, &DecodingError{Reason: fmt.Sprintf("unknown base type number %d", baseTypeNumber)}
	}

	if bt.Name == "string" {
		if len(data) == 0 {
			return Value{}, &DecodingError{Reason: "string field", ExpectedMultiple: 1, Actual: 0}
		}
		return Value{BaseType: bt, Text: decodeString(data)}, nil
	}

	if len(data) == 0 || len(data)%bt.Width != 0 {
		return Value{}, &DecodingError{Reason: bt.Name + " field", ExpectedMultiple: bt.Width, Actual: len(data)}
	}

	count := len(data) / bt.Width
	if count == 1 {
		return Value{BaseType: bt, Scalar: bt.decodeElem(data, arch)}, nil
	}

	arr := make([]interface{}, count)
	for i := 0; i < count; i++ {
		arr[i] = bt.decodeElem(data[i*bt.Width:(i+1)*bt.Width], arch)
	}
	return Value{BaseType: bt, IsArray: true, Array: arr}, nil
}

// decodeString reinterprets the full byte slice as text, trimming a
// trailing NUL terminator. If the bytes are not valid UTF-8 (some devices
// emit Latin-1 product/location names) it falls back to a Latin-1 decode
// rather than surfacing replacement characters, mirroring the salvage path
// the teacher's DecodeUTF16String helper takes for malformed resource
// strings.
func decodeString(data []byte) string {
	trimmed := strings.TrimRight(string(data), "\x00")
	if utf8.ValidString(trimmed) {
		return trimmed
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(trimmed)
	if err != nil {
		return trimmed
	}
	return decoded
}
