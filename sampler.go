// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import "time"

// waiter is satisfied by the platform-specific wake event; it's the type
// Connection.ensureEvent returns, so the wait closure that
// Connection.Blocking hands to a Sampler never depends on
// golang.org/x/sys/windows directly. Sampler itself holds only function
// fields, which tests replace with fakes.
type waiter interface {
	Wait(timeout time.Duration) (waitResult, error)
}

// Sampler is the Blocking Sampler (spec §4.G): a convenience wrapper that
// waits for the producer's wake event before taking a snapshot, so a
// caller can poll at the simulator's own cadence rather than spinning.
//
// wait and sample are plain function fields rather than a *Connection
// reference so this type's control flow (the three-outcome switch below)
// is testable without a real Windows wake event; Connection.Blocking
// wires them to ensureEvent/LatestSnapshot.
type Sampler struct {
	wait   func(timeout time.Duration) (waitResult, error)
	sample func() (*Snapshot, error)
}

// Sample blocks until the producer signals, timeout elapses, or the wake
// event is abandoned, then returns the freshest snapshot exactly as
// Connection.LatestSnapshot would.
//
// A timeout returns *TimedOutError. An abandoned wait returns ErrAbandoned
// (spec §8 scenario S4: "the three outcomes — signaled, timed out,
// abandoned — must be distinguishable").
func (s *Sampler) Sample(timeout time.Duration) (*Snapshot, error) {
	result, err := s.wait(timeout)
	if err != nil {
		return nil, err
	}
	switch result {
	case waitTimedOut:
		return nil, &TimedOutError{Timeout: timeout}
	case waitAbandoned:
		return nil, ErrAbandoned
	}

	return s.sample()
}
