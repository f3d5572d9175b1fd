// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import "testing"

func TestReadSessionInfo(t *testing.T) {
	b := newRegionBuilder(0)
	// session-info text including a byte (0xE9, eacute in ISO-8859-1)
	// outside the ASCII range, to exercise the charmap decode path.
	text := "WeekendInfo:\n TrackName: caf\xe9\n"
	baseHeader(b, 0, 0, 0, 0, 0, 64, int32(len(text)))
	b.putString(64, text, len(text))

	data := b.bytes()
	h, err := parseHeader(data)
	if err != nil {
		t.Fatalf("parseHeader() error: %v", err)
	}

	info, err := readSessionInfo(data, h)
	if err != nil {
		t.Fatalf("readSessionInfo() error: %v", err)
	}
	if info.Version != h.SessionInfoVersion {
		t.Fatalf("Version = %d, want %d", info.Version, h.SessionInfoVersion)
	}
	want := "WeekendInfo:\n TrackName: café\n"
	if info.Text != want {
		t.Fatalf("Text = %q, want %q", info.Text, want)
	}
}
