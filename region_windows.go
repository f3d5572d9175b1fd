// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

//go:build windows

package irsdk

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mappedRegion is the Mapped Region Handle (spec §4.A): a read-only view
// over the producer's named shared-memory object.
type mappedRegion struct {
	mapping windows.Handle
	addr    uintptr
	data    []byte

	closeOnce sync.Once
	closeErr  error
}

// openRegion opens name read-only and maps the entire region, sizing the
// view from OS metadata (VirtualQuery's reported region size) rather than
// a value the caller supplies, per spec §4.A.
func openRegion(name string) (*mappedRegion, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}

	mapping, err := windows.OpenFileMapping(windows.FILE_MAP_READ, false, namePtr)
	if err != nil {
		return nil, translateOpenError(err)
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, translateOpenError(err)
	}

	size, err := regionSize(addr)
	if err != nil {
		windows.UnmapViewOfFile(addr)
		windows.CloseHandle(mapping)
		return nil, err
	}
	if size < headerSize {
		windows.UnmapViewOfFile(addr)
		windows.CloseHandle(mapping)
		return nil, ErrTruncated
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &mappedRegion{mapping: mapping, addr: addr, data: data}, nil
}

// regionSize asks the OS how large the mapping at addr is, rather than
// trusting a caller-supplied length.
func regionSize(addr uintptr) (int, error) {
	var mbi windows.MemoryBasicInformation
	if err := windows.VirtualQuery(addr, &mbi, unsafe.Sizeof(mbi)); err != nil {
		return 0, err
	}
	return int(mbi.RegionSize), nil
}

// Bytes returns the current contents of the mapped region. Because this
// is a live OS mapping, the producer's in-place writes are visible on
// every call with no extra syscall.
func (r *mappedRegion) Bytes() []byte { return r.data }

// Close unmaps the view and closes the mapping handle. Safe to call more
// than once; only the first call does any work.
func (r *mappedRegion) Close() error {
	r.closeOnce.Do(func() {
		if err := windows.UnmapViewOfFile(r.addr); err != nil {
			r.closeErr = err
		}
		if err := windows.CloseHandle(r.mapping); err != nil && r.closeErr == nil {
			r.closeErr = err
		}
	})
	return r.closeErr
}

// translateOpenError maps a raw Windows error onto the closed taxonomy of
// spec §7 for the handful of cases callers are expected to branch on;
// anything else is returned verbatim (spec §7: "Os-level errors are
// surfaced verbatim").
func translateOpenError(err error) error {
	switch err {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return ErrNotAvailable
	case windows.ERROR_ACCESS_DENIED:
		return ErrPermissionDenied
	default:
		return err
	}
}
