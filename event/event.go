// Package event implements the timed-event dispatcher, the bounded
// message queue, and the bell subsystem (spec.md §4.12, §4.13).
package event

import "github.com/dpt-reimpl/greatescape/assets"

// dispatchPeriod is how many main-loop ticks elapse between dispatch
// checks (spec.md §4.12: "dispatch only runs once every 64 main-loop
// ticks").
const dispatchPeriod = 64

// Clock advances the day-clock and triggers the 15-entry timed-event
// table (spec.md §4.12).
type Clock struct {
	Day   uint8 // 0..DayClockModulus-1
	ticks uint32
}

// Tick advances the clock by one main-loop tick and, every dispatchPeriod
// ticks, checks the current day value against the timed-event table
// before advancing Day for the next period (spec.md §4.12).
func (c *Clock) Tick() (assets.EventHandlerID, bool) {
	c.ticks++
	if c.ticks%dispatchPeriod != 0 {
		return 0, false
	}
	var handler assets.EventHandlerID
	found := false
	for _, te := range assets.TimedEventTable {
		if te.Time == c.Day {
			handler, found = te.Handler, true
			break
		}
	}
	c.Day = (c.Day + 1) % assets.DayClockModulus
	return handler, found
}

// Queue is the bounded, head-down message queue message_display drains
// one character at a time (spec.md §4.12).
type Queue struct {
	buf     [assets.MessageQueueCapacity]byte
	len     int
	cursor  int
	playing bool
}

// Enqueue appends msg to the queue, dropping bytes that would overflow
// the fixed capacity. Consecutive messages are separated by one space so
// the per-character renderer never runs two banners together.
func (q *Queue) Enqueue(msg string) {
	if q.len > 0 && q.len < len(q.buf) && q.buf[q.len-1] != ' ' {
		q.buf[q.len] = ' '
		q.len++
	}
	for i := 0; i < len(msg) && q.len < len(q.buf); i++ {
		q.buf[q.len] = msg[i]
		q.len++
	}
	if !q.playing && q.len > 0 {
		q.playing = true
		q.cursor = 0
	}
}

// DisplayNext advances message_display's per-character state machine by
// one call, returning the character rendered, if any, and whether a
// click should accompany it. Called twice per main-loop tick.
func (q *Queue) DisplayNext() (ch byte, ok bool) {
	if !q.playing {
		return 0, false
	}
	ch = q.buf[q.cursor]
	q.cursor++
	if q.cursor >= q.len {
		q.reset()
	}
	return ch, true
}

// PendingText reports the undisplayed remainder of the currently queued
// message, for diagnostics (debugmon's message-queue dump).
func (q *Queue) PendingText() string {
	if !q.playing {
		return ""
	}
	return string(q.buf[q.cursor:q.len])
}

func (q *Queue) reset() {
	q.len = 0
	q.cursor = 0
	q.playing = false
}

// Active reports whether a message is currently being displayed.
func (q *Queue) Active() bool { return q.playing }

// Bell values (spec.md §4.13): 0 stops, 1..254 is a finite countdown,
// 255 rings perpetually.
const (
	BellStopped   = 0
	BellPerpetual = 255
)

// Bell tracks the ringer countdown and which of the two ringer bitmaps is
// currently shown.
type Bell struct {
	Counter uint8
	on      bool
}

// Ring arms the bell for n ticks (use BellPerpetual for "rings forever
// until stopped").
func (b *Bell) Ring(n uint8) { b.Counter = n }

// Stop silences the bell immediately.
func (b *Bell) Stop() { b.Counter = BellStopped; b.on = false }

// Tick implements ring_bell: while counting, toggles the ringer sprite
// and reports whether a click should be played this tick (spec.md
// §4.13).
func (b *Bell) Tick() (sprite [12]byte, click bool) {
	if b.Counter == BellStopped {
		return assets.RingerBitmaps[0], false
	}
	if b.Counter != BellPerpetual {
		b.Counter--
	}
	b.on = !b.on
	idx := 0
	if b.on {
		idx = 1
	}
	return assets.RingerBitmaps[idx], true
}

// Ringing reports whether the bell is currently sounding.
func (b *Bell) Ringing() bool { return b.Counter != BellStopped }
