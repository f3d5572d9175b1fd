// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

import (
	"os"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// Options configures Open. The zero value is valid: it attaches to the
// simulator's default region and event names, opens the wake event
// lazily on first Sample, and logs at error level to stderr.
type Options struct {
	// RegionName overrides TelemetryPath.
	RegionName string

	// EventName overrides DataValidEventPath.
	EventName string

	// WaitEvent, if true, opens the wake event eagerly in Open instead of
	// lazily on the first call to Connection.Blocking().Sample (spec §4.B:
	// "acquired together, or lazily on first block").
	WaitEvent bool

	// Logger receives diagnostics such as duplicate channel names
	// discovered while building a VarHeaderTable. Defaults to a
	// kratos log.Helper filtered to error level.
	Logger log.Logger
}

// regionHandle is satisfied by the platform-specific mapped region; it's
// the interface Connection programs against so its OS-independent logic
// (currentTable, LatestSnapshot, SessionInfo) can be exercised in tests
// with a synthetic region instead of a real Windows mapping.
type regionHandle interface {
	regionReader
	Close() error
}

// Connection is the library's public entry point (spec §6): a live
// attachment to the producer's region and, lazily, its wake event.
type Connection struct {
	region regionHandle

	eventName string
	eventOnce sync.Once
	event     *wakeEvent
	eventErr  error

	mu           sync.RWMutex
	table        *VarHeaderTable
	tableVersion int32

	logger *log.Helper

	closeOnce sync.Once
	closeErr  error
}

// Open attaches to the producer's shared-memory region (and, if
// opts.WaitEvent is set, its wake event). opts may be nil to accept every
// default.
func Open(opts *Options) (*Connection, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.RegionName == "" {
		o.RegionName = TelemetryPath
	}
	if o.EventName == "" {
		o.EventName = DataValidEventPath
	}
	if o.Logger == nil {
		o.Logger = log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(log.LevelError))
	}

	region, err := openRegion(o.RegionName)
	if err != nil {
		return nil, err
	}

	c := &Connection{
		region:    region,
		eventName: o.EventName,
		logger:    log.NewHelper(o.Logger),
	}

	if o.WaitEvent {
		if _, err := c.ensureEvent(); err != nil {
			region.Close()
			return nil, err
		}
	}

	return c, nil
}

// Close releases the region mapping and, if opened, the wake event. Safe
// to call more than once.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		if c.event != nil {
			if err := c.event.Close(); err != nil {
				c.closeErr = err
			}
		}
		if err := c.region.Close(); err != nil && c.closeErr == nil {
			c.closeErr = err
		}
	})
	return c.closeErr
}

// ensureEvent opens the wake event on first use and caches it for the
// life of the connection.
func (c *Connection) ensureEvent() (waiter, error) {
	c.eventOnce.Do(func() {
		c.event, c.eventErr = openEvent(c.eventName)
	})
	if c.eventErr != nil {
		return nil, c.eventErr
	}
	return c.event, nil
}

// currentTable returns the connection's VarHeaderTable, rebuilding it
// whenever the header's SessionInfoVersion has advanced since the table
// was last derived (spec §3/§4.D/§5).
func (c *Connection) currentTable() (*VarHeaderTable, Header, error) {
	data := c.region.Bytes()
	h, err := parseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	c.mu.RLock()
	table := c.table
	version := c.tableVersion
	c.mu.RUnlock()
	if table != nil && version == h.SessionInfoVersion {
		return table, h, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.table != nil && c.tableVersion == h.SessionInfoVersion {
		return c.table, h, nil
	}

	newTable, err := parseVarHeaderTable(data, h)
	if err != nil {
		return nil, Header{}, err
	}
	if len(newTable.Duplicates) > 0 {
		c.logger.Warnf("%s: %v", ErrDuplicateChannel, newTable.Duplicates)
	}
	c.table = newTable
	c.tableVersion = h.SessionInfoVersion
	return c.table, h, nil
}

// LatestSnapshot copies the freshest available data buffer (spec §4.E),
// rebuilding the channel table first if the session-info version has
// advanced since the last call.
func (c *Connection) LatestSnapshot() (*Snapshot, error) {
	table, _, err := c.currentTable()
	if err != nil {
		return nil, err
	}
	return selectSnapshot(c.region, table)
}

// SessionInfo extracts and decodes the current session-info blob (spec
// §4.H). Unlike LatestSnapshot, it does not go through the channel table.
func (c *Connection) SessionInfo() (SessionInfo, error) {
	data := c.region.Bytes()
	h, err := parseHeader(data)
	if err != nil {
		return SessionInfo{}, err
	}
	return readSessionInfo(data, h)
}

// Blocking returns a Sampler that waits on the producer's wake event
// before taking a snapshot (spec §4.G).
func (c *Connection) Blocking() *Sampler {
	return &Sampler{
		wait: func(timeout time.Duration) (waitResult, error) {
			event, err := c.ensureEvent()
			if err != nil {
				return 0, err
			}
			return event.Wait(timeout)
		},
		sample: c.LatestSnapshot,
	}
}
