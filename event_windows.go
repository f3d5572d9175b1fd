// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

//go:build windows

package irsdk

import (
	"sync"
	"time"

	"golang.org/x/sys/windows"
)

// waitResult classifies the outcome of a wait on the wake event.
type waitResult int

const (
	waitSignaled waitResult = iota
	waitTimedOut
	waitAbandoned
)

// wakeEvent is the Wake-Event Handle (spec §4.B): a named, auto-reset
// event the producer signals once per published tick.
type wakeEvent struct {
	handle windows.Handle

	closeOnce sync.Once
	closeErr  error
}

func openEvent(name string) (*wakeEvent, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	h, err := windows.OpenEvent(windows.SYNCHRONIZE, false, namePtr)
	if err != nil {
		return nil, translateOpenError(err)
	}
	return &wakeEvent{handle: h}, nil
}

// Wait blocks until the event is signaled, timeout elapses, or the event
// is abandoned, matching the three outcomes spec §4.B and §8 scenario S4
// require the Sampler to distinguish.
func (e *wakeEvent) Wait(timeout time.Duration) (waitResult, error) {
	ms := uint32(timeout / time.Millisecond)
	status, err := windows.WaitForSingleObject(e.handle, ms)
	switch status {
	case windows.WAIT_OBJECT_0:
		return waitSignaled, nil
	case uint32(windows.WAIT_TIMEOUT):
		return waitTimedOut, nil
	case windows.WAIT_ABANDONED:
		return waitAbandoned, nil
	default:
		if err != nil {
			return 0, err
		}
		return 0, ErrNotAvailable
	}
}

// Close releases the event handle. Safe to call more than once.
func (e *wakeEvent) Close() error {
	e.closeOnce.Do(func() {
		e.closeErr = windows.CloseHandle(e.handle)
	})
	return e.closeErr
}
