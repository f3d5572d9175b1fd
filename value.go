// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

// Kind discriminates the variants of Value. It's a closed set mirroring
// the channel taxonomy fixed by the producer (spec §3/§9: "avoid open
// extensibility, the channel taxonomy is fixed by the producer").
type Kind int

const (
	KindByte Kind = iota
	KindBool
	KindInt
	KindBits
	KindFloat
	KindDouble
	KindIntArray
	KindFloatArray
	KindBoolArray
	KindUnknown
)

// Value is the tagged union produced by Snapshot.Get (spec §3). Exactly
// one of the scalar or array fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Byte   uint8
	Bool   bool
	Int    int32
	Bits   uint32
	Float  float32
	Double float64

	IntArray   []int32
	FloatArray []float32
	BoolArray  []bool
}

// AsUint32 widens Int or Bits to uint32 (spec §4.F's explicit, lossy
// conversion rules: "Int -> u32: reinterpret bits", "Bits -> u32:
// identity"). Any other Kind fails with TypeMismatchError.
func (v Value) AsUint32() (uint32, error) {
	switch v.Kind {
	case KindInt:
		return uint32(v.Int), nil
	case KindBits:
		return v.Bits, nil
	default:
		return 0, &TypeMismatchError{Expected: "int or bits", Found: v.Kind.String()}
	}
}

// AsFloat64 widens Float to float64 ("Float -> f64: widening"). Any other
// Kind fails with TypeMismatchError.
func (v Value) AsFloat64() (float64, error) {
	if v.Kind != KindFloat {
		return 0, &TypeMismatchError{Expected: "float", Found: v.Kind.String()}
	}
	return float64(v.Float), nil
}

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindBits:
		return "bits"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindIntArray:
		return "int_array"
	case KindFloatArray:
		return "float_array"
	case KindBoolArray:
		return "bool_array"
	default:
		return "unknown"
	}
}
