// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import "encoding/binary"

// regionBuilder assembles a synthetic little-endian region buffer the
// same shape real tests in this package use in place of a live simulator
// or a real Windows machine (spec §8: components C-F, H, I must be fully
// testable on any platform).
type regionBuilder struct {
	buf []byte
}

func newRegionBuilder(size int) *regionBuilder {
	return &regionBuilder{buf: make([]byte, size)}
}

func (b *regionBuilder) grow(n int) {
	if len(b.buf) < n {
		grown := make([]byte, n)
		copy(grown, b.buf)
		b.buf = grown
	}
}

func (b *regionBuilder) putInt32(offset uint32, v int32) *regionBuilder {
	b.grow(int(offset) + 4)
	binary.LittleEndian.PutUint32(b.buf[offset:], uint32(v))
	return b
}

func (b *regionBuilder) putUint8(offset uint32, v uint8) *regionBuilder {
	b.grow(int(offset) + 1)
	b.buf[offset] = v
	return b
}

func (b *regionBuilder) putFloat32bits(offset uint32, bits uint32) *regionBuilder {
	return b.putInt32(offset, int32(bits))
}

func (b *regionBuilder) putFloat64bits(offset uint32, bits uint64) *regionBuilder {
	b.grow(int(offset) + 8)
	binary.LittleEndian.PutUint64(b.buf[offset:], bits)
	return b
}

func (b *regionBuilder) putString(offset uint32, s string, fieldLen int) *regionBuilder {
	b.grow(int(offset) + fieldLen)
	copy(b.buf[offset:int(offset)+fieldLen], s)
	return b
}

func (b *regionBuilder) bytes() []byte { return b.buf }

// baseHeader writes a minimal, valid Header preamble: version 2, nVars
// variable descriptors at headerOffset, nBuffers rotating buffers of
// bufferLength bytes each starting at buffersDataOffset, and a
// sessionInfoLength-byte session-info blob at sessionInfoOffset.
func baseHeader(b *regionBuilder, nVars, nBuffers, bufferLength int32, headerOffset, buffersDataOffset, sessionInfoOffset, sessionInfoLength int32) {
	b.grow(headerSize)
	b.grow(int(buffersDataOffset + nBuffers*bufferLength))
	b.putInt32(0, 2)             // version
	b.putInt32(4, 0)             // status
	b.putInt32(8, 60)            // tick_rate
	b.putInt32(12, 1)            // session_info_version
	b.putInt32(16, sessionInfoLength)
	b.putInt32(20, sessionInfoOffset)
	b.putInt32(24, nVars)
	b.putInt32(28, headerOffset)
	b.putInt32(32, nBuffers)
	b.putInt32(36, bufferLength)
	for i := int32(0); i < nBuffers; i++ {
		base := uint32(48 + i*16)
		b.putInt32(base, 0) // ticks, filled in by callers
		b.putInt32(base+4, buffersDataOffset+i*bufferLength)
	}
}

// putVarHeader writes one 144-byte descriptor record at offset.
func putVarHeader(b *regionBuilder, offset uint32, valueType ValueType, varOffset, count int32, countAsTime bool, name, description, unit string) {
	b.putInt32(offset, int32(valueType))
	b.putInt32(offset+4, varOffset)
	b.putInt32(offset+8, count)
	if countAsTime {
		b.putUint8(offset+12, 1)
	} else {
		b.putUint8(offset+12, 0)
	}
	b.putString(offset+16, name, varNameLen)
	b.putString(offset+48, description, varDescriptionLen)
	b.putString(offset+112, unit, varUnitLen)
}
