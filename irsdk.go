// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

// Package irsdk reads live telemetry and session metadata published by the
// iRacing simulator into a named, read-only shared-memory region, and
// decodes the fixed-layout header of pre-recorded replay files.
//
// The simulator publishes a self-describing binary layout at roughly 60 Hz:
// a fixed preamble (Header), a table of variable descriptors (VarHeader),
// and a small number of rotating data buffers. Connection attaches to that
// region and the companion named wake event; Snapshot is an owned,
// torn-read-free copy of one buffer at one tick, queried by channel name
// through Value.
package irsdk

import "time"

const (
	// TelemetryPath is the default name of the simulator's shared-memory
	// region.
	TelemetryPath = `Local\IRSDKMemMapFileName`

	// DataValidEventPath is the default name of the producer's wake event.
	DataValidEventPath = `Local\IRSDKDataValidEvent`

	// UnlimitedLaps is the sentinel value iRacing uses for "no lap limit".
	UnlimitedLaps = 32767

	// UnlimitedTime is the sentinel duration (seconds) for "no time limit".
	UnlimitedTime = 604800.0
)

// maxBuffers is the maximum number of rotating data buffers the header can
// describe; entries beyond n_buffers are padding and must be ignored.
const maxBuffers = 4

// varHeaderSize is the fixed size, in bytes, of one variable descriptor
// record.
const varHeaderSize = 144

// headerSize is the fixed size, in bytes, of the preamble at the base of
// the region.
const headerSize = 112

// maxTornReadAttempts bounds the Snapshot Selector's retry loop (spec
// §4.E): three attempts, then ErrTornRead.
const maxTornReadAttempts = 3

// defaultWaitTimeout is a 100 ms wait timeout. Nothing in this package
// reads it: Connection.Blocking takes no timeout and Sampler.Sample is
// always given one by its caller.
const defaultWaitTimeout = 100 * time.Millisecond
