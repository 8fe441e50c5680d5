// Package clock provides the request timestamp source for signed requests.
// It keeps a server-skew offset so signed timestamps land inside the
// exchange's acceptance window even when the local clock drifts.
package clock

import (
	"sync"
	"time"
)

// ISOFormat is the millisecond UTC layout the exchange expects.
const ISOFormat = "2006-01-02T15:04:05.000Z"

// Clock yields skew-adjusted timestamps. The zero value is usable and
// reports unadjusted local time. Safe for concurrent use.
type Clock struct {
	mu     sync.RWMutex
	offset time.Duration
	now    func() time.Time // overridable in tests
}

func New() *Clock {
	return &Clock{now: time.Now}
}

// Sync records the skew between the server clock and the local clock from a
// server epoch-milliseconds reading. Call it once at startup or whenever the
// transport observes a timestamp rejection.
func (c *Clock) Sync(serverEpochMS int64) {
	local := c.timeNow()
	server := time.UnixMilli(serverEpochMS)
	c.mu.Lock()
	c.offset = server.Sub(local)
	c.mu.Unlock()
}

// Offset returns the current skew adjustment.
func (c *Clock) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Now returns the skew-adjusted time.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	off := c.offset
	c.mu.RUnlock()
	return c.timeNow().Add(off)
}

// NowISO returns the skew-adjusted time as the ISO-8601 string used both in
// the signed message and the timestamp header. Callers must read it once per
// request attempt and thread the same value through both.
func (c *Clock) NowISO() string {
	return c.Now().UTC().Format(ISOFormat)
}

func (c *Clock) timeNow() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
