// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

// regionReader exposes the live bytes of a mapped region. Bytes returns
// the current contents of the producer's memory on every call — for a
// real mmap-backed region this is simply the mapped slice, so "re-reading"
// costs nothing beyond whatever the producer has already written; it's
// never a buffered copy take at open time (spec §4.C: "the preamble is
// re-read on every public operation").
type regionReader interface {
	Bytes() []byte
}

// sliceRegion is a regionReader backed by a plain byte slice, used by
// tests to hand synthetic regions to selectSnapshot. The Windows mapped
// region does not use it; it implements Bytes over its own mapped slice.
type sliceRegion struct {
	data []byte
}

func (s *sliceRegion) Bytes() []byte { return s.data }

// Snapshot is an immutable, owned copy of one data buffer at one tick
// (spec §3). It outlives the region mapping safely because it never
// aliases the producer's memory.
type Snapshot struct {
	data  []byte
	tick  int32
	table *VarHeaderTable
}

// Tick returns the producer's tick counter observed when this snapshot
// was copied.
func (s *Snapshot) Tick() int32 { return s.tick }

// selectSnapshot implements the Snapshot Selector (spec §4.E): pick the
// freshest buffer by tick (ties go to the lowest index), copy its bytes,
// then re-check the tick to detect a producer write racing the copy.
// Retries up to maxTornReadAttempts times before returning ErrTornRead.
func selectSnapshot(src regionReader, table *VarHeaderTable) (*Snapshot, error) {
	var lastErr error
	for attempt := 0; attempt < maxTornReadAttempts; attempt++ {
		data := src.Bytes()
		h, err := parseHeader(data)
		if err != nil {
			return nil, err
		}

		idx := 0
		best := h.Buffers[0].Ticks
		for i := 1; i < int(h.NBuffers); i++ {
			if h.Buffers[i].Ticks > best {
				best = h.Buffers[i].Ticks
				idx = i
			}
		}
		tickBefore := h.Buffers[idx].Ticks

		v := newView(data)
		raw, err := v.slice(uint32(h.Buffers[idx].Offset), uint32(h.BufferLength))
		if err != nil {
			return nil, err
		}
		copied := make([]byte, len(raw))
		copy(copied, raw)

		// Re-read the same slot's tick to catch the rare race where the
		// producer finished a publish into this slot mid-copy.
		h2, err := parseHeader(src.Bytes())
		if err != nil {
			return nil, err
		}
		if h2.Buffers[idx].Ticks != tickBefore {
			lastErr = ErrTornRead
			continue
		}

		return &Snapshot{data: copied, tick: tickBefore, table: table}, nil
	}
	return nil, lastErr
}

// Has reports whether name is a known channel.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.table.Lookup(name)
	return ok
}

// Get returns the typed value of the named channel (spec §4.F).
func (s *Snapshot) Get(name string) (Value, error) {
	vh, ok := s.table.Lookup(name)
	if !ok {
		return Value{}, &UnknownChannelError{Name: name}
	}
	return decodeValue(newView(s.data), vh)
}

// ChannelDescription is one entry of Snapshot.Enumerate's result: a
// descriptor's metadata paired with its decoded value.
type ChannelDescription struct {
	Name        string
	Description string
	Unit        string
	Count       uint32
	CountAsTime bool
	Value       Value
}

// Enumerate returns one entry per descriptor in the snapshot's table
// (spec §4.F). get(name) for every name returned here is guaranteed to
// succeed (spec §8 invariant 3).
func (s *Snapshot) Enumerate() ([]ChannelDescription, error) {
	entries := s.table.Entries()
	out := make([]ChannelDescription, 0, len(entries))
	for _, vh := range entries {
		val, err := decodeValue(newView(s.data), vh)
		if err != nil {
			return nil, err
		}
		out = append(out, ChannelDescription{
			Name:        vh.Name,
			Description: vh.Description,
			Unit:        vh.Unit,
			Count:       vh.Count,
			CountAsTime: vh.CountAsTime,
			Value:       val,
		})
	}
	return out, nil
}

// decodeValue interprets the bytes for one descriptor as a Value,
// following the scalar/array rules of spec §4.F.
func decodeValue(v view, vh VarHeader) (Value, error) {
	switch vh.Type {
	case ValueTypeChar, ValueTypeBool, ValueTypeInt, ValueTypeBitfield, ValueTypeFloat, ValueTypeDouble:
		// fall through to typed decode below
	default:
		return Value{Kind: KindUnknown}, nil
	}

	if vh.Count <= 1 {
		return decodeScalar(v, vh)
	}
	return decodeArray(v, vh)
}

func decodeScalar(v view, vh VarHeader) (Value, error) {
	switch vh.Type {
	case ValueTypeChar:
		b, err := v.uint8(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindByte, Byte: b}, nil
	case ValueTypeBool:
		b, err := v.uint8(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBool, Bool: b != 0}, nil
	case ValueTypeInt:
		i, err := v.int32(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: i}, nil
	case ValueTypeBitfield:
		b, err := v.uint32(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBits, Bits: b}, nil
	case ValueTypeFloat:
		f, err := v.float32(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFloat, Float: f}, nil
	case ValueTypeDouble:
		d, err := v.float64(vh.Offset)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindDouble, Double: d}, nil
	default:
		return Value{Kind: KindUnknown}, nil
	}
}

// decodeArray handles descriptors with Count > 1. Only i32, f32, and bool
// element types are supported as arrays; any other scalar type with
// Count > 1 returns UnsupportedShapeError (spec §4.F: "not observed in
// the producer's schema").
func decodeArray(v view, vh VarHeader) (Value, error) {
	elemSize := vh.Type.byteSize()
	switch vh.Type {
	case ValueTypeInt:
		out := make([]int32, vh.Count)
		for i := range out {
			n, err := v.int32(vh.Offset + uint32(i)*elemSize)
			if err != nil {
				return Value{}, err
			}
			out[i] = n
		}
		return Value{Kind: KindIntArray, IntArray: out}, nil
	case ValueTypeFloat:
		out := make([]float32, vh.Count)
		for i := range out {
			f, err := v.float32(vh.Offset + uint32(i)*elemSize)
			if err != nil {
				return Value{}, err
			}
			out[i] = f
		}
		return Value{Kind: KindFloatArray, FloatArray: out}, nil
	case ValueTypeBool:
		out := make([]bool, vh.Count)
		for i := range out {
			b, err := v.uint8(vh.Offset + uint32(i)*elemSize)
			if err != nil {
				return Value{}, err
			}
			out[i] = b != 0
		}
		return Value{Kind: KindBoolArray, BoolArray: out}, nil
	default:
		return Value{}, &UnsupportedShapeError{ValueType: vh.Type, Count: int(vh.Count)}
	}
}
