package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualClock struct{ t time.Time }

func (c *manualClock) Now() time.Time          { return c.t }
func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLockout_LocksAfterThreshold(t *testing.T) {
	clk := &manualClock{t: time.Unix(0, 0)}
	l := newLockout(3, time.Minute, clk.Now)

	for i := 0; i < 2; i++ {
		l.RecordFailure("a@b.co")
		assert.False(t, l.Locked("a@b.co"))
	}
	l.RecordFailure("a@b.co")
	assert.True(t, l.Locked("a@b.co"))
	assert.False(t, l.Locked("other@b.co"))
}

func TestLockout_WindowExpires(t *testing.T) {
	clk := &manualClock{t: time.Unix(0, 0)}
	l := newLockout(1, time.Minute, clk.Now)

	l.RecordFailure("a@b.co")
	assert.True(t, l.Locked("a@b.co"))

	clk.Advance(time.Minute)
	assert.False(t, l.Locked("a@b.co"))
}

func TestLockout_Reset(t *testing.T) {
	clk := &manualClock{t: time.Unix(0, 0)}
	l := newLockout(2, time.Minute, clk.Now)

	l.RecordFailure("a@b.co")
	l.Reset("a@b.co")
	l.RecordFailure("a@b.co")
	assert.False(t, l.Locked("a@b.co"))
}

func TestLockout_Disabled(t *testing.T) {
	l := newLockout(0, time.Minute, time.Now)
	for i := 0; i < 10; i++ {
		l.RecordFailure("a@b.co")
	}
	assert.False(t, l.Locked("a@b.co"))
}
