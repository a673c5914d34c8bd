package ddl

// ValueType identifies the storage kind of a Value. The order mirrors the
// primitive type token table of the grammar.
type ValueType int

const (
	TypeNone ValueType = iota
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUnsignedInt8
	TypeUnsignedInt16
	TypeUnsignedInt32
	TypeUnsignedInt64
	TypeHalf
	TypeFloat
	TypeDouble
	TypeString
	TypeRef
)

func (vt ValueType) String() string {
	switch vt {
	case TypeBool:
		return "bool"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUnsignedInt8:
		return "unsigned_int8"
	case TypeUnsignedInt16:
		return "unsigned_int16"
	case TypeUnsignedInt32:
		return "unsigned_int32"
	case TypeUnsignedInt64:
		return "unsigned_int64"
	case TypeHalf:
		return "half"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeRef:
		return "ref"
	default:
		return "none"
	}
}

// Value is a tagged scalar. Exactly one of the storage fields is meaningful,
// selected by Type. Integer widths share Int64/Uint64 storage; the parser
// truncates to the declared width before storing.
type Value struct {
	Type    ValueType
	Bool    bool
	Int64   int64
	Uint64  uint64
	Float32 float32
	Float64 float64
	String  string
	Ref     *Reference
}

// NewBoolValue creates a boolean value.
func NewBoolValue(v bool) *Value {
	return &Value{Type: TypeBool, Bool: v}
}

// NewIntValue creates a signed integer value of the given width,
// truncating v to that width.
func NewIntValue(t ValueType, v int64) *Value {
	val := &Value{Type: t}
	switch t {
	case TypeInt8:
		val.Int64 = int64(int8(v))
	case TypeInt16:
		val.Int64 = int64(int16(v))
	case TypeInt32:
		val.Int64 = int64(int32(v))
	default:
		val.Int64 = v
	}
	return val
}

// NewUnsignedIntValue creates an unsigned integer value of the given width,
// truncating v to that width.
func NewUnsignedIntValue(t ValueType, v uint64) *Value {
	val := &Value{Type: t}
	switch t {
	case TypeUnsignedInt8:
		val.Uint64 = uint64(uint8(v))
	case TypeUnsignedInt16:
		val.Uint64 = uint64(uint16(v))
	case TypeUnsignedInt32:
		val.Uint64 = uint64(uint32(v))
	default:
		val.Uint64 = v
	}
	return val
}

// NewFloatValue creates a single-precision floating point value.
func NewFloatValue(v float32) *Value {
	return &Value{Type: TypeFloat, Float32: v}
}

// NewDoubleValue creates a double-precision floating point value.
func NewDoubleValue(v float64) *Value {
	return &Value{Type: TypeDouble, Float64: v}
}

// NewStringValue creates a string value holding the interior bytes of a
// string literal.
func NewStringValue(s string) *Value {
	return &Value{Type: TypeString, String: s}
}

// DataArray is one element of an array payload: an ordered chain of values
// parsed from a single braced list.
type DataArray struct {
	Values []*Value
}
