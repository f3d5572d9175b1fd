// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"errors"
	"math"
	"testing"
)

// sequenceRegion returns a different byte slice on each call to Bytes,
// simulating a producer that publishes between a test's header read and
// its buffer copy.
type sequenceRegion struct {
	seq []([]byte)
	i   int
}

func (r *sequenceRegion) Bytes() []byte {
	b := r.seq[r.i]
	if r.i < len(r.seq)-1 {
		r.i++
	}
	return b
}

// buildSnapshotRegion lays out a two-buffer, two-channel region: the
// fixed header (bytes 0-111), a two-record variable-descriptor table
// immediately after it, then two 16-byte data buffers. Buffer ticks are
// left at tick0/tick1; "Speed" (float32) lives at relative offset 0 and
// "Gear" (int32) at relative offset 4 in each buffer.
func buildSnapshotRegion(tick0, tick1 int32) (*regionBuilder, uint32, uint32) {
	const bufferLength = 16
	const headerOffset = headerSize
	buffersDataOffset := uint32(headerOffset + 2*varHeaderSize)

	b := newRegionBuilder(0)
	baseHeader(b, 2, 2, bufferLength, headerOffset, int32(buffersDataOffset), 0, 0)
	b.putInt32(48, tick0)
	b.putInt32(64, tick1)
	putVarHeader(b, headerOffset, ValueTypeFloat, 0, 1, false, "Speed", "", "m/s")
	putVarHeader(b, headerOffset+varHeaderSize, ValueTypeInt, 4, 1, false, "Gear", "", "")

	buf0 := buffersDataOffset
	buf1 := buffersDataOffset + bufferLength
	return b, buf0, buf1
}

func TestSelectSnapshotFreshestBuffer(t *testing.T) {
	b, _, buf1 := buildSnapshotRegion(3, 7)
	b.putFloat32bits(buf1, math.Float32bits(55.5))
	data := b.bytes()

	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader() error: %v", err)
	}
	table, err := parseVarHeaderTable(data, h)
	if err != nil {
		t.Fatalf("parseVarHeaderTable() error: %v", err)
	}

	snap, err := selectSnapshot(&sliceRegion{data: data}, table)
	if err != nil {
		t.Fatalf("selectSnapshot() error: %v", err)
	}
	if snap.Tick() != 7 {
		t.Fatalf("Tick() = %d, want 7", snap.Tick())
	}
	val, err := snap.Get("Speed")
	if err != nil {
		t.Fatalf("Get(Speed) error: %v", err)
	}
	if val.Kind != KindFloat || val.Float != 55.5 {
		t.Fatalf("Get(Speed) = %+v, want Float 55.5", val)
	}
}

func TestSelectSnapshotTieBreaksToLowestIndex(t *testing.T) {
	b, buf0, buf1 := buildSnapshotRegion(9, 9)
	b.putFloat32bits(buf0, math.Float32bits(1))
	b.putFloat32bits(buf1, math.Float32bits(2))
	data := b.bytes()

	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader() error: %v", err)
	}
	table, err := parseVarHeaderTable(data, h)
	if err != nil {
		t.Fatalf("parseVarHeaderTable() error: %v", err)
	}

	snap, err := selectSnapshot(&sliceRegion{data: data}, table)
	if err != nil {
		t.Fatalf("selectSnapshot() error: %v", err)
	}
	val, err := snap.Get("Speed")
	if err != nil {
		t.Fatalf("Get(Speed) error: %v", err)
	}
	if val.Float != 1 {
		t.Fatalf("Get(Speed) = %v, want buffer 0's value (1)", val.Float)
	}
}

func TestSelectSnapshotTornReadExhaustsRetries(t *testing.T) {
	b, _, _ := buildSnapshotRegion(1, 1)
	base := b.bytes()

	// Every re-check after the copy observes a higher tick than the
	// initial selection did, so every attempt reports a torn read.
	seq := make([][]byte, 0, maxTornReadAttempts*2+1)
	for i := 0; i < maxTornReadAttempts*2+1; i++ {
		next := make([]byte, len(base))
		copy(next, base)
		tick := int32(1 + i)
		nb := &regionBuilder{buf: next}
		nb.putInt32(48, tick)
		seq = append(seq, nb.bytes())
	}

	region := &sequenceRegion{seq: seq}
	h, err := parseHeader(base)
	if err != nil {
		t.Fatalf("parseHeader() error: %v", err)
	}
	table, err := parseVarHeaderTable(base, h)
	if err != nil {
		t.Fatalf("parseVarHeaderTable() error: %v", err)
	}

	_, err = selectSnapshot(region, table)
	if !errors.Is(err, ErrTornRead) {
		t.Fatalf("selectSnapshot() error = %v, want ErrTornRead", err)
	}
}

func TestSnapshotEnumerateIncludesArrays(t *testing.T) {
	const headerOffset = headerSize
	buffersDataOffset := int32(headerOffset + varHeaderSize)

	b := newRegionBuilder(0)
	baseHeader(b, 1, 1, 32, headerOffset, buffersDataOffset, 0, 0)
	b.putInt32(48, 1)
	putVarHeader(b, headerOffset, ValueTypeInt, 0, 3, false, "Gears", "", "")
	b.putInt32(uint32(buffersDataOffset), 1)
	b.putInt32(uint32(buffersDataOffset)+4, 2)
	b.putInt32(uint32(buffersDataOffset)+8, 3)
	data := b.bytes()

	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader() error: %v", err)
	}
	table, err := parseVarHeaderTable(data, h)
	if err != nil {
		t.Fatalf("parseVarHeaderTable() error: %v", err)
	}
	snap, err := selectSnapshot(&sliceRegion{data: data}, table)
	if err != nil {
		t.Fatalf("selectSnapshot() error: %v", err)
	}

	entries, err := snap.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Value.Kind != KindIntArray {
		t.Fatalf("Enumerate() = %+v, want one IntArray entry", entries)
	}
	want := []int32{1, 2, 3}
	got := entries[0].Value.IntArray
	if len(got) != len(want) {
		t.Fatalf("IntArray = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IntArray = %v, want %v", got, want)
		}
	}
}
