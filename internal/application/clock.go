package application

import (
	"sync/atomic"
	"time"

	"github.com/bnema/tradebot/internal/ports"
)

// PlatformClock is the local clock shifted by the measured offset to the
// platform's clock. Guard codes and confirmation signatures use it.
type PlatformClock struct {
	base   ports.Clock
	offset atomic.Int64
}

var _ ports.Clock = (*PlatformClock)(nil)

func NewPlatformClock(base ports.Clock) *PlatformClock {
	if base == nil {
		base = ports.SystemClock{}
	}
	return &PlatformClock{base: base}
}

func (c *PlatformClock) Now() time.Time {
	return c.base.Now().Add(c.Offset())
}

func (c *PlatformClock) Sync(serverTime time.Time) {
	c.offset.Store(int64(serverTime.Sub(c.base.Now())))
}

func (c *PlatformClock) Offset() time.Duration {
	return time.Duration(c.offset.Load())
}
