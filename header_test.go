// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name string
		in   func() []byte
		want Header
		err  error
	}{
		{
			name: "minimal valid header",
			in: func() []byte {
				b := newRegionBuilder(headerSize)
				baseHeader(b, 3, 2, 64, 112, 240, 368, 1024)
				b.putInt32(48, 5)  // buffer 0 ticks
				b.putInt32(64, 5)  // buffer 1 ticks
				return b.bytes()
			},
			want: Header{
				Version:            2,
				TickRate:           60,
				SessionInfoVersion: 1,
				SessionInfoLength:  1024,
				SessionInfoOffset:  368,
				NVars:              3,
				HeaderOffset:       112,
				NBuffers:           2,
				BufferLength:       64,
				Buffers: [maxBuffers]bufferDescriptor{
					{Ticks: 5, Offset: 240},
					{Ticks: 5, Offset: 304},
					{Ticks: 0, Offset: 0},
					{Ticks: 0, Offset: 0},
				},
			},
		},
		{
			name: "region shorter than header size",
			in:   func() []byte { return make([]byte, headerSize-1) },
			err:  ErrTruncated,
		},
		{
			name: "version below minimum",
			in: func() []byte {
				b := newRegionBuilder(headerSize)
				baseHeader(b, 0, 0, 0, 0, 0, 0, 0)
				b.putInt32(0, 0)
				return b.bytes()
			},
			err: ErrTruncated,
		},
		{
			name: "n_buffers exceeds maxBuffers",
			in: func() []byte {
				b := newRegionBuilder(headerSize)
				baseHeader(b, 0, 0, 0, 0, 0, 0, 0)
				b.putInt32(32, maxBuffers+1)
				return b.bytes()
			},
			err: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHeader(tt.in())
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("parseHeader() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHeader() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
