// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the region/event attachment path and the
// snapshot selector. These are the closed taxonomy described in spec §7;
// callers are expected to compare with errors.Is.
var (
	// ErrNotAvailable is returned when the producer's region or event is
	// not present (the simulator isn't running).
	ErrNotAvailable = errors.New("irsdk: region or event not available")

	// ErrPermissionDenied is returned when the OS refused to open the
	// region or event.
	ErrPermissionDenied = errors.New("irsdk: permission denied")

	// ErrTruncated is returned when the region is smaller than its own
	// header declares it to be.
	ErrTruncated = errors.New("irsdk: region truncated")

	// ErrTornRead is returned when three consecutive selection attempts
	// observed the producer overwrite the chosen buffer slot.
	ErrTornRead = errors.New("irsdk: torn read, producer outran the reader")

	// ErrAbandoned is returned when the OS reports an abandoned wait on
	// the wake event.
	ErrAbandoned = errors.New("irsdk: wake event abandoned")

	// ErrOutsideBoundary is returned when a decode would read past the
	// end of a byte view.
	ErrOutsideBoundary = errors.New("irsdk: read outside boundary")

	// ErrDuplicateChannel is the diagnostic Connection logs (not fatal,
	// never returned) when the variable-header table sees a repeated
	// channel name; the first descriptor wins and later ones are recorded
	// in VarHeaderTable.Duplicates.
	ErrDuplicateChannel = errors.New("irsdk: duplicate channel name")
)

// TimedOutError is returned by Sampler.Sample when the wait deadline
// expires before the producer signals.
type TimedOutError struct {
	Timeout time.Duration
}

func (e *TimedOutError) Error() string {
	return fmt.Sprintf("irsdk: timed out after %s waiting for sample", e.Timeout)
}

// Is reports whether target is a *TimedOutError, ignoring the timeout
// value, so callers can do errors.Is(err, &TimedOutError{}).
func (e *TimedOutError) Is(target error) bool {
	_, ok := target.(*TimedOutError)
	return ok
}

// UnknownChannelError is returned by Snapshot.Get when no descriptor
// matches the requested channel name.
type UnknownChannelError struct {
	Name string
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("irsdk: unknown channel %q", e.Name)
}

// TypeMismatchError is returned by Value conversion helpers when the
// requested representation can't be derived from the stored Kind.
type TypeMismatchError struct {
	Expected, Found string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("irsdk: type mismatch, expected %s, found %s", e.Expected, e.Found)
}

// UnsupportedShapeError is returned when a descriptor declares an array of
// a scalar type the accessor does not know how to read as an array (only
// i32, f32, and bool arrays are supported; spec §4.F).
type UnsupportedShapeError struct {
	ValueType ValueType
	Count     int
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("irsdk: unsupported array shape, type=%s count=%d", e.ValueType, e.Count)
}

// Replay decoder error sentinels (spec §4.I / §7).
var (
	// ErrBadMagic is returned when a replay stream doesn't begin with the
	// "YLPR" magic.
	ErrBadMagic = errors.New("irsdk: replay file magic not found")

	// ErrBadTimestamp is returned when the embedded timestamp string
	// can't be parsed as "2006-01-02 15:04:05".
	ErrBadTimestamp = errors.New("irsdk: replay timestamp malformed")
)

// ReplayError wraps a decode failure with the field being decoded, per
// spec §7's "parsing errors are enriched with the field being decoded."
type ReplayError struct {
	Field string
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("irsdk: replay decode failed at field %q: %v", e.Field, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }
