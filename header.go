// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

// Header is the fixed 112-byte preamble at the base of the region
// (spec §3/§4.C). It is re-read on every public operation; the producer
// updates tick counters in place, so the reader must never cache a chosen
// buffer across calls.
type Header struct {
	// Version is the producer's protocol version. Observed value: 2.
	// Callers may reject versions they don't understand; the decoder
	// itself accepts any Version >= 1.
	Version int32

	// Status holds producer status flags.
	Status int32

	// TickRate is the publish rate, in Hz.
	TickRate int32

	// SessionInfoVersion increments whenever the session-info blob
	// changes; a cached VarHeaderTable or SessionInfo should be
	// re-derived when this advances.
	SessionInfoVersion int32

	// SessionInfoLength is the byte length of the session-info blob.
	SessionInfoLength int32

	// SessionInfoOffset is the byte offset of the session-info blob,
	// relative to the region base.
	SessionInfoOffset int32

	// NVars is the number of variable descriptors in the table at
	// HeaderOffset.
	NVars int32

	// HeaderOffset is the byte offset of the descriptor table, relative
	// to the region base.
	HeaderOffset int32

	// NBuffers is the number of rotating data buffers in rotation
	// (<= maxBuffers).
	NBuffers int32

	// BufferLength is the byte length of one data buffer.
	BufferLength int32

	// Buffers holds up to maxBuffers buffer descriptors; only the first
	// NBuffers entries are meaningful.
	Buffers [maxBuffers]bufferDescriptor
}

// bufferDescriptor is one entry of the header's buffer table: a
// monotonically non-decreasing tick counter plus the buffer's byte offset
// from the region base.
type bufferDescriptor struct {
	Ticks  int32
	Offset int32
}

// minValidVersion is the lowest Version the decoder accepts; spec §4.C
// says "accept any version >= 1".
const minValidVersion = 1

// parseHeader decodes the fixed preamble from the base of data. It is
// cheap enough to call on every public operation, which is what keeps the
// reader from caching a stale buffer selection across producer publishes.
func parseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, ErrTruncated
	}
	v := newView(data)

	var h Header
	var err error
	read := func(off uint32) int32 {
		if err != nil {
			return 0
		}
		var x int32
		x, err = v.int32(off)
		return x
	}

	h.Version = read(0)
	h.Status = read(4)
	h.TickRate = read(8)
	h.SessionInfoVersion = read(12)
	h.SessionInfoLength = read(16)
	h.SessionInfoOffset = read(20)
	h.NVars = read(24)
	h.HeaderOffset = read(28)
	h.NBuffers = read(32)
	h.BufferLength = read(36)
	// 8 bytes of padding at offset 40, then four 16-byte buffer entries
	// starting at offset 48 (ticks i32, offset i32, 8 bytes pad).
	const buffersBase = 48
	const bufferEntrySize = 16
	for i := 0; i < maxBuffers; i++ {
		base := uint32(buffersBase + i*bufferEntrySize)
		h.Buffers[i].Ticks = read(base)
		h.Buffers[i].Offset = read(base + 4)
	}
	if err != nil {
		return Header{}, err
	}

	if h.Version < minValidVersion {
		return Header{}, ErrTruncated
	}
	if h.NBuffers < 0 || h.NBuffers > maxBuffers {
		return Header{}, ErrTruncated
	}
	return h, nil
}
