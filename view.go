// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"encoding/binary"
	"math"
)

// view is a bounds-enforcing, read-only window over a byte region. It never
// retains the caller's backing array beyond what's handed to it, and every
// accessor explicitly bounds-checks before touching encoding/binary rather
// than relying on structural casts over raw memory (see spec §9's note on
// portable, alignment-free decoding).
type view struct {
	data []byte
}

func newView(data []byte) view {
	return view{data: data}
}

func (v view) len() int { return len(v.data) }

// slice returns the bytes in [offset, offset+size), or ErrOutsideBoundary
// if that range falls outside the view.
func (v view) slice(offset, size uint32) ([]byte, error) {
	end := uint64(offset) + uint64(size)
	if end > uint64(len(v.data)) {
		return nil, ErrOutsideBoundary
	}
	return v.data[offset:end], nil
}

func (v view) uint8(offset uint32) (uint8, error) {
	b, err := v.slice(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (v view) uint16(offset uint32) (uint16, error) {
	b, err := v.slice(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (v view) uint32(offset uint32) (uint32, error) {
	b, err := v.slice(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (v view) int32(offset uint32) (int32, error) {
	u, err := v.uint32(offset)
	return int32(u), err
}

func (v view) uint64(offset uint32) (uint64, error) {
	b, err := v.slice(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (v view) float32(offset uint32) (float32, error) {
	u, err := v.uint32(offset)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (v view) float64(offset uint32) (float64, error) {
	u, err := v.uint64(offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// cstring reads an ASCII string of exactly size bytes starting at offset,
// trimmed at the first NUL byte, per the fixed name/description/unit
// fields of the variable descriptor (spec §3).
func (v view) cstring(offset, size uint32) (string, error) {
	b, err := v.slice(offset, size)
	if err != nil {
		return "", err
	}
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n]), nil
}
