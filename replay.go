// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"bufio"
	"encoding/binary"
	"io"
	"strings"
	"time"
)

// replayMagic is the fixed 4-byte signature at the start of a replay file
// (spec §4.I step 1 / §6).
var replayMagic = [4]byte{'Y', 'L', 'P', 'R'}

// replayTimestampLayout is the reference-time layout for the replay
// preamble's embedded timestamp, "YYYY-MM-DD HH:MM:SS" (spec §4.I step 9).
const replayTimestampLayout = "2006-01-02 15:04:05"

const replayEntryLength = 12

// ReplayEntry is one entry of a replay's entry list — id, car id, class
// id, and car name (spec §3). The core leaves the Entries slice of
// ReplayHeader empty (spec §4.I: "the richer entry table occurs later in
// the file and is outside the core's scope"); the type is kept so a
// collaborator extending the decoder has somewhere to put that data.
type ReplayEntry struct {
	ID      int32
	CarID   uint32
	ClassID uint32
	CarName string
}

// ReplayHeader is the structured result of parsing a pre-recorded
// session's fixed-layout preamble (spec §3/§4.I).
type ReplayHeader struct {
	UserName  string
	Timestamp time.Time
	Track     string
	Layout    string
	HasLayout bool
	SessionID uint32
	UserID    uint32
	UserCarID uint32
	Entries   []ReplayEntry
}

// ParseReplayHeader decodes a replay file's preamble from r, following
// the exact byte layout in spec §4.I (mirrored from the producer's own
// replay writer, which this core does not otherwise implement).
func ParseReplayHeader(r io.Reader) (ReplayHeader, error) {
	br := bufio.NewReader(r)
	var h ReplayHeader

	magic := make([]byte, 4)
	if _, err := io.ReadFull(br, magic); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "magic", Err: err}
	}
	for i := range magic {
		if magic[i] != replayMagic[i] {
			return ReplayHeader{}, &ReplayError{Field: "magic", Err: ErrBadMagic}
		}
	}

	if err := replaySkip(br, 40); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "pre-user-id padding", Err: err}
	}

	userID, err := replayReadUint32(br)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "user_id", Err: err}
	}
	h.UserID = userID

	userCarID, err := replayReadUint32(br)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "user_car_id", Err: err}
	}
	h.UserCarID = userCarID

	if err := replaySkip(br, 4); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "post-user-car-id padding", Err: err}
	}

	userName, err := replayReadCString(br, 64)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "user_name", Err: err}
	}
	h.UserName = userName

	if err := replaySkip(br, 8); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "post-user-name padding", Err: err}
	}

	entriesCount, err := replayReadUint32(br)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "entries_count", Err: err}
	}

	timestampStr, err := replayReadCString(br, 32)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "timestamp", Err: err}
	}
	ts, err := time.Parse(replayTimestampLayout, timestampStr)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "timestamp", Err: ErrBadTimestamp}
	}
	h.Timestamp = ts

	if err := replaySkip(br, 120); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "post-timestamp padding", Err: err}
	}

	if err := replaySkip(br, int(entriesCount)*replayEntryLength); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "preliminary entry table", Err: err}
	}

	assetListLength, err := replayReadUint32(br)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "asset_list_length", Err: err}
	}
	if err := replaySkip(br, int(assetListLength)); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "asset list", Err: err}
	}

	if err := replaySkip(br, 6); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "post-asset-list padding", Err: err}
	}

	if err := skipSpacePadding(br); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "space padding", Err: err}
	}

	if err := replaySkip(br, 27); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "pre-session-id padding", Err: err}
	}

	sessionID, err := replayReadUint32(br)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "session_id", Err: err}
	}
	h.SessionID = sessionID

	if err := replaySkip(br, 116); err != nil {
		return ReplayHeader{}, &ReplayError{Field: "post-session-id padding", Err: err}
	}

	trackLayout, err := replayReadCString(br, 64)
	if err != nil {
		return ReplayHeader{}, &ReplayError{Field: "track_layout", Err: err}
	}
	if idx := strings.IndexByte(trackLayout, '\\'); idx >= 0 {
		h.Track = trackLayout[:idx]
		h.Layout = trackLayout[idx+1:]
		h.HasLayout = true
	} else {
		h.Track = trackLayout
	}

	return h, nil
}

// skipSpacePadding consumes consecutive ASCII spaces and the single
// terminating non-space byte that follows them. The producer's writer
// evaluates this run with a take-while over a byte iterator: testing each
// byte against the predicate requires reading it off the stream first, so
// the byte that fails the predicate has already been consumed by the time
// the run ends — there is no push-back. This mirrors that verbatim rather
// than a derived alignment formula — see DESIGN.md's Open Question
// decision for why.
func skipSpacePadding(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b != ' ' {
			return nil
		}
	}
}

func replaySkip(r io.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, r, int64(n))
	return err
}

func replayReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// replayReadCString reads exactly n bytes and returns the ASCII prefix up
// to (not including) the first NUL byte.
func replayReadCString(r io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	end := 0
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	return string(buf[:end]), nil
}
