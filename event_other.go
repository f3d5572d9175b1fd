// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

//go:build !windows

package irsdk

import "time"

type waitResult int

const (
	waitSignaled waitResult = iota
	waitTimedOut
	waitAbandoned
)

// wakeEvent stubs the Wake-Event Handle off Windows; see region_other.go.
type wakeEvent struct{}

func openEvent(name string) (*wakeEvent, error) {
	return nil, ErrNotAvailable
}

func (e *wakeEvent) Wait(timeout time.Duration) (waitResult, error) {
	return 0, ErrNotAvailable
}

func (e *wakeEvent) Close() error { return nil }
