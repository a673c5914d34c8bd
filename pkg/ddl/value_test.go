package ddl

import (
	"testing"
)

func TestIntValueTruncation(t *testing.T) {
	tests := []struct {
		name  string
		vtype ValueType
		in    int64
		want  int64
	}{
		{"int8 in range", TypeInt8, 100, 100},
		{"int8 wraps", TypeInt8, 300, 44},
		{"int16 wraps", TypeInt16, 70000, 4464},
		{"int32 keeps", TypeInt32, 1 << 20, 1 << 20},
		{"int64 keeps", TypeInt64, 1 << 40, 1 << 40},
		{"negative", TypeInt32, -42, -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewIntValue(tt.vtype, tt.in)
			if v.Type != tt.vtype {
				t.Errorf("Type = %v, want %v", v.Type, tt.vtype)
			}
			if v.Int64 != tt.want {
				t.Errorf("Int64 = %d, want %d", v.Int64, tt.want)
			}
		})
	}
}

func TestUnsignedIntValueTruncation(t *testing.T) {
	v := NewUnsignedIntValue(TypeUnsignedInt8, 300)
	if v.Uint64 != 44 {
		t.Errorf("Uint64 = %d, want 44", v.Uint64)
	}
	v = NewUnsignedIntValue(TypeUnsignedInt64, 1<<40)
	if v.Uint64 != 1<<40 {
		t.Errorf("Uint64 = %d, want %d", v.Uint64, uint64(1)<<40)
	}
}

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		vtype ValueType
		want  string
	}{
		{TypeBool, "bool"},
		{TypeUnsignedInt16, "unsigned_int16"},
		{TypeHalf, "half"},
		{TypeRef, "ref"},
		{TypeNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.vtype.String(); got != tt.want {
			t.Errorf("ValueType(%d).String() = %q, want %q", tt.vtype, got, tt.want)
		}
	}
}
