package event

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
)

func TestClockDispatchesOnlyEveryDispatchPeriod(t *testing.T) {
	var c Clock
	fired := 0
	for i := 0; i < dispatchPeriod-1; i++ {
		if _, ok := c.Tick(); ok {
			fired++
		}
	}
	if fired != 0 {
		t.Errorf("no dispatch should fire before %d ticks, got %d", dispatchPeriod, fired)
	}
	if _, ok := c.Tick(); !ok {
		t.Errorf("expected a dispatch exactly on tick %d", dispatchPeriod)
	}
}

func TestClockFiresAnotherDayDawnsOnFirstDispatch(t *testing.T) {
	var c Clock
	for i := 0; i < dispatchPeriod-1; i++ {
		c.Tick()
	}
	h, ok := c.Tick()
	if !ok || h != assets.EventAnotherDayDawns {
		t.Errorf("the first dispatch should fire day 0's handler, got handler=%v ok=%v", h, ok)
	}
	if c.Day != 1 {
		t.Errorf("day should advance to 1 after the dispatch check, got %d", c.Day)
	}
}

func TestClockWrapsAtDayClockModulus(t *testing.T) {
	var c Clock
	c.Day = assets.DayClockModulus - 1
	for i := 0; i < dispatchPeriod; i++ {
		c.Tick()
	}
	if c.Day != 0 {
		t.Errorf("day should wrap to 0 at modulus, got %d", c.Day)
	}
}

func TestQueueEnqueueAndDrainInOrder(t *testing.T) {
	var q Queue
	q.Enqueue("HI")
	if !q.Active() {
		t.Fatalf("queue should become active once a message is enqueued")
	}
	c1, ok1 := q.DisplayNext()
	c2, ok2 := q.DisplayNext()
	if !ok1 || !ok2 || c1 != 'H' || c2 != 'I' {
		t.Errorf("expected to drain 'H' then 'I', got %q %q", c1, c2)
	}
	if q.Active() {
		t.Errorf("queue should go inactive once fully drained")
	}
}

func TestQueueDropsBytesBeyondCapacity(t *testing.T) {
	var q Queue
	over := make([]byte, assets.MessageQueueCapacity+5)
	for i := range over {
		over[i] = 'X'
	}
	q.Enqueue(string(over))
	count := 0
	for {
		_, ok := q.DisplayNext()
		if !ok {
			break
		}
		count++
	}
	if count != assets.MessageQueueCapacity {
		t.Errorf("queue should cap at %d bytes, drained %d", assets.MessageQueueCapacity, count)
	}
}

func TestBellTickCountsDownAndStops(t *testing.T) {
	var b Bell
	b.Ring(2)
	_, click := b.Tick()
	if !click || !b.Ringing() {
		t.Fatalf("bell should be ringing after Ring(2)")
	}
	b.Tick()
	if b.Ringing() {
		t.Errorf("bell should stop once its countdown reaches zero")
	}
}

func TestBellPerpetualNeverDecrements(t *testing.T) {
	var b Bell
	b.Ring(BellPerpetual)
	for i := 0; i < 1000; i++ {
		b.Tick()
	}
	if b.Counter != BellPerpetual {
		t.Errorf("perpetual bell should never decrement, got counter=%d", b.Counter)
	}
}

func TestBellTicksAlternateSprite(t *testing.T) {
	var b Bell
	b.Ring(10)
	s1, _ := b.Tick()
	s2, _ := b.Tick()
	if s1 == s2 {
		t.Errorf("consecutive bell ticks should alternate the ringer sprite")
	}
}
