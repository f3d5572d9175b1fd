// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import "golang.org/x/text/encoding/charmap"

// SessionInfo is the embedded textual session document (spec §4.H). The
// core does not parse its internal schema — that's a collaborator's
// concern (spec §1) — it only extracts and decodes the bytes.
type SessionInfo struct {
	// Version is the header's session_info_version at the time this blob
	// was read; callers use it to cache-invalidate.
	Version int32

	// Raw is the undecoded session-info bytes, exactly as published.
	Raw []byte

	// Text is Raw decoded from ISO-8859-1.
	Text string
}

// readSessionInfo extracts h.SessionInfoLength bytes at h.SessionInfoOffset
// from data and decodes them as ISO-8859-1 (spec §6: "Session-info blob
// encoding. ISO-8859-1 text").
func readSessionInfo(data []byte, h Header) (SessionInfo, error) {
	v := newView(data)
	raw, err := v.slice(uint32(h.SessionInfoOffset), uint32(h.SessionInfoLength))
	if err != nil {
		return SessionInfo{}, err
	}

	rawCopy := make([]byte, len(raw))
	copy(rawCopy, raw)

	text, err := charmap.ISO8859_1.NewDecoder().String(string(rawCopy))
	if err != nil {
		return SessionInfo{}, err
	}

	return SessionInfo{
		Version: h.SessionInfoVersion,
		Raw:     rawCopy,
		Text:    text,
	}, nil
}
