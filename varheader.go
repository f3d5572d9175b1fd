// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

// ValueType is the wire tag of a channel's storage type (spec §3).
type ValueType int32

// Known value types. Any tag outside this set decodes to KindUnknown
// rather than failing, so callers can still enumerate every channel
// (spec §4.F).
const (
	ValueTypeChar     ValueType = 0
	ValueTypeBool     ValueType = 1
	ValueTypeInt      ValueType = 2
	ValueTypeBitfield ValueType = 3
	ValueTypeFloat    ValueType = 4
	ValueTypeDouble   ValueType = 5
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeChar:
		return "char"
	case ValueTypeBool:
		return "bool"
	case ValueTypeInt:
		return "int32"
	case ValueTypeBitfield:
		return "bitfield32"
	case ValueTypeFloat:
		return "float32"
	case ValueTypeDouble:
		return "float64"
	default:
		return "unknown"
	}
}

// byteSize returns the wire size, in bytes, of one element of t. Unknown
// types report 0 and must not be used to advance an offset.
func (t ValueType) byteSize() uint32 {
	switch t {
	case ValueTypeChar, ValueTypeBool:
		return 1
	case ValueTypeInt, ValueTypeBitfield, ValueTypeFloat:
		return 4
	case ValueTypeDouble:
		return 8
	default:
		return 0
	}
}

// VarHeader is one fixed 144-byte descriptor record: a channel's wire
// type, its byte offset within a data buffer, its element count, and its
// name/description/unit strings (spec §3).
type VarHeader struct {
	Type        ValueType
	Offset      uint32
	Count       uint32
	CountAsTime bool
	Name        string
	Description string
	Unit        string
}

const (
	varNameLen        = 32
	varDescriptionLen = 64
	varUnitLen        = 32
)

// parseVarHeader decodes one 144-byte descriptor record from data at
// offset.
func parseVarHeader(v view, offset uint32) (VarHeader, error) {
	var vh VarHeader

	typeTag, err := v.int32(offset)
	if err != nil {
		return VarHeader{}, err
	}
	vh.Type = ValueType(typeTag)

	off, err := v.int32(offset + 4)
	if err != nil {
		return VarHeader{}, err
	}
	vh.Offset = uint32(off)

	count, err := v.int32(offset + 8)
	if err != nil {
		return VarHeader{}, err
	}
	vh.Count = uint32(count)

	countAsTime, err := v.uint8(offset + 12)
	if err != nil {
		return VarHeader{}, err
	}
	vh.CountAsTime = countAsTime != 0
	// 3 bytes of alignment padding follow at offset+13.

	const nameOff = 16
	const descOff = nameOff + varNameLen
	const unitOff = descOff + varDescriptionLen

	vh.Name, err = v.cstring(offset+nameOff, varNameLen)
	if err != nil {
		return VarHeader{}, err
	}
	vh.Description, err = v.cstring(offset+descOff, varDescriptionLen)
	if err != nil {
		return VarHeader{}, err
	}
	vh.Unit, err = v.cstring(offset+unitOff, varUnitLen)
	if err != nil {
		return VarHeader{}, err
	}
	return vh, nil
}

// VarHeaderTable is the name-indexed set of descriptors for every channel
// a connection exposes. It is cloned into caller memory (never aliases
// the region) because it must outlive any single snapshot, and is
// re-derived whenever the header's SessionInfoVersion advances (spec
// §3/§4.D).
type VarHeaderTable struct {
	entries []VarHeader
	byName  map[string]int

	// Duplicates records channel names seen more than once; the first
	// descriptor for each name wins and later ones are recorded here as
	// a diagnostic rather than failing the whole table (spec §4.D).
	Duplicates []string
}

// parseVarHeaderTable reads h.NVars records of varHeaderSize bytes each,
// starting at h.HeaderOffset, and validates the offset+count*size bound
// invariant from spec §3 for every one of them.
func parseVarHeaderTable(data []byte, h Header) (*VarHeaderTable, error) {
	v := newView(data)
	n := int(h.NVars)
	if n < 0 {
		return nil, ErrTruncated
	}

	table := &VarHeaderTable{
		entries: make([]VarHeader, 0, n),
		byName:  make(map[string]int, n),
	}

	for i := 0; i < n; i++ {
		recordOffset := uint32(h.HeaderOffset) + uint32(i)*varHeaderSize
		vh, err := parseVarHeader(v, recordOffset)
		if err != nil {
			return nil, err
		}

		if vh.Type != ValueTypeChar && vh.Type != ValueTypeBool &&
			vh.Type != ValueTypeInt && vh.Type != ValueTypeBitfield &&
			vh.Type != ValueTypeFloat && vh.Type != ValueTypeDouble {
			// Unknown types still occupy a slot in the table; the bound
			// invariant can't be checked against an unknown element size,
			// so they're kept but never sized.
			table.entries = append(table.entries, vh)
			if _, dup := table.byName[vh.Name]; dup {
				table.Duplicates = append(table.Duplicates, vh.Name)
			} else {
				table.byName[vh.Name] = len(table.entries) - 1
			}
			continue
		}

		elemSize := vh.Type.byteSize()
		if uint64(vh.Offset)+uint64(vh.Count)*uint64(elemSize) > uint64(h.BufferLength) {
			return nil, ErrTruncated
		}

		table.entries = append(table.entries, vh)
		if _, dup := table.byName[vh.Name]; dup {
			table.Duplicates = append(table.Duplicates, vh.Name)
		} else {
			table.byName[vh.Name] = len(table.entries) - 1
		}
	}

	return table, nil
}

// Lookup returns the descriptor for name and whether it was found.
func (t *VarHeaderTable) Lookup(name string) (VarHeader, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return VarHeader{}, false
	}
	return t.entries[idx], true
}

// Entries returns every descriptor in the table, in declaration order.
func (t *VarHeaderTable) Entries() []VarHeader {
	out := make([]VarHeader, len(t.entries))
	copy(out, t.entries)
	return out
}
