// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

//go:build !windows

package irsdk

// mappedRegion stubs the Mapped Region Handle on platforms that have no
// concept of a named Windows file mapping. The producer this package
// talks to only ever runs on Windows; openRegion fails immediately so
// cross-platform callers get a clean ErrNotAvailable instead of a build
// failure.
type mappedRegion struct{}

func openRegion(name string) (*mappedRegion, error) {
	return nil, ErrNotAvailable
}

func (r *mappedRegion) Bytes() []byte { return nil }

func (r *mappedRegion) Close() error { return nil }
