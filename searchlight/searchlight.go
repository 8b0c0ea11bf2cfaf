// Package searchlight drives the three independent searchlight paths, the
// caught-the-hero tracker, and the disc overlay plot (spec.md §4.11).
package searchlight

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
)

// NumSearchlights is the fixed descriptor count (spec.md §4.11).
const NumSearchlights = 3

// State is CAUGHT once a searchlight has found the hero; it then tracks
// the hero's position instead of following its script.
type State uint8

const (
	StatePatrolling State = iota
	StateCaught
)

// catchHalfWidth bounds the catch rectangle around a searchlight's centre
// (spec.md §4.11 names the test "a small rectangle" without a constant).
const catchHalfWidth = 4

// Descriptor is one searchlight's live path-following state.
type Descriptor struct {
	Pos        coords.Pos8
	Counter    uint8
	Direction  assets.Direction
	ScriptIdx  int
	StepIdx    int
	Reverse    bool
}

// Table holds all three searchlights plus the shared caught state.
type Table struct {
	Lights [NumSearchlights]Descriptor
	State  State
}

// NewTable seeds every searchlight at its scripted starting position and
// the first step of its script.
func NewTable() *Table {
	var t Table
	for i := range t.Lights {
		step := assets.SearchlightScripts[i][0]
		t.Lights[i] = Descriptor{
			Pos:       assets.SearchlightStart[i],
			Counter:   step.Counter,
			Direction: step.Direction,
			ScriptIdx: i,
			StepIdx:   0,
		}
	}
	return &t
}

// directionDelta returns the (du, dv) step a searchlight moves for one
// tick of a given direction, doubled on v to match the original's (±1,
// ±2) movement (spec.md §4.11 step 2).
func directionDelta(dir assets.Direction) (du, dv int8) {
	switch dir {
	case assets.DirTopLeft:
		return -1, -2
	case assets.DirTopRight:
		return 1, -2
	case assets.DirBottomRight:
		return 1, 2
	default: // DirBottomLeft
		return -1, 2
	}
}

// xorReverse flips a direction's low bit when the script is being walked
// backwards (spec.md §4.11 step 2: "direction is XORed with bit 1").
func xorReverse(dir assets.Direction, reverse bool) assets.Direction {
	if !reverse {
		return dir
	}
	return assets.Direction(uint8(dir) ^ 0x01)
}

func advanceScript(d *Descriptor, script []assets.SearchlightScriptStep) {
	if !d.Reverse {
		d.StepIdx++
		if d.StepIdx >= len(script) {
			d.StepIdx = len(script) - 1
			d.Reverse = true
		}
	} else {
		d.StepIdx--
		if d.StepIdx < 0 {
			d.StepIdx = 0
			d.Reverse = false
		}
	}
	step := script[d.StepIdx]
	d.Counter = step.Counter
	d.Direction = step.Direction
}

// Step advances one searchlight by one tick: decrementing its counter,
// advancing through its script on expiry, and moving its position
// (spec.md §4.11 step 1-2).
func Step(d *Descriptor) {
	script := assets.SearchlightScripts[d.ScriptIdx]
	if d.Counter > 0 {
		d.Counter--
	}
	if d.Counter == 0 {
		advanceScript(d, script)
	}

	dir := xorReverse(d.Direction, d.Reverse)
	du, dv := directionDelta(dir)
	d.Pos.U = uint8(int(d.Pos.U) + int(du))
	d.Pos.V = uint8(int(d.Pos.V) + int(dv))
}

// StepAll advances every searchlight by one tick, unless the table is
// already in the caught state (a caught searchlight tracks the hero
// instead, handled by TrackHero).
func StepAll(t *Table) {
	if t.State == StateCaught {
		return
	}
	for i := range t.Lights {
		Step(&t.Lights[i])
	}
}

// Caught tests whether the hero lies within the catch rectangle of any
// searchlight; on the first hit it latches the caught state and returns
// the catching light's index (spec.md §4.11).
func Caught(t *Table, heroPos coords.Pos8) (int, bool) {
	if t.State == StateCaught {
		return -1, false
	}
	for i := range t.Lights {
		l := &t.Lights[i]
		if within(heroPos, l.Pos, catchHalfWidth) {
			t.State = StateCaught
			return i, true
		}
	}
	return -1, false
}

func within(a, b coords.Pos8, halfWidth int) bool {
	du := int(a.U) - int(b.U)
	if du < 0 {
		du = -du
	}
	dv := int(a.V) - int(b.V)
	if dv < 0 {
		dv = -dv
	}
	return du <= halfWidth && dv <= halfWidth
}

// TrackHero moves the catching searchlight one unit per tick toward the
// hero's current position, once caught (spec.md §4.11).
func TrackHero(t *Table, caughtIdx int, heroPos coords.Pos8) {
	if t.State != StateCaught || caughtIdx < 0 || caughtIdx >= len(t.Lights) {
		return
	}
	l := &t.Lights[caughtIdx]
	l.Pos.U = step1(l.Pos.U, heroPos.U)
	l.Pos.V = step1(l.Pos.V, heroPos.V)
}

func step1(cur, target uint8) uint8 {
	if cur < target {
		return cur + 1
	}
	if cur > target {
		return cur - 1
	}
	return cur
}

// attrYellow and attrBlue are the two attribute cells searchlight_plot
// paints (spec.md §4.11: "yellow-on-black where the bit is set,
// bright-blue-on-black otherwise").
var (
	attrYellow = machine.Attribute{Paper: 0, Ink: 6}
	attrBlue   = machine.Attribute{Paper: 0, Ink: 1, Bright: true}
)

// ClipRect bounds the game window the disc plot must respect (spec.md
// §4.11).
type ClipRect struct {
	X0, Y0, X1, Y1 int
}

// Plot paints a 16x16 circular disc of attribute cells centred on pos
// (a pixel position; the containing cell becomes the disc's centre) into
// screen's attribute plane, reading SearchlightDiscMask bit-by-bit and
// clipping to clip (spec.md §4.11). The clip rectangle is in pixels,
// like pos.
func Plot(screen *machine.Screen, pos coords.IsoPos, clip ClipRect) {
	cellX0 := int(pos.X)/8 - 8
	cellY0 := int(pos.Y)/8 - 8
	clipCX0, clipCY0 := clip.X0/8, clip.Y0/8
	clipCX1, clipCY1 := (clip.X1+7)/8, (clip.Y1+7)/8

	for row := 0; row < 16; row++ {
		cy := cellY0 + row
		if cy < clipCY0 || cy >= clipCY1 || cy < 0 || cy >= 24 {
			continue
		}
		for half := 0; half < 2; half++ {
			rowByte := assets.SearchlightDiscMask[half][row]
			for bit := 0; bit < 8; bit++ {
				cx := cellX0 + half*8 + bit
				if cx < clipCX0 || cx >= clipCX1 || cx < 0 || cx >= 32 {
					continue
				}
				attr := attrBlue
				if rowByte&(1<<uint(7-bit)) != 0 {
					attr = attrYellow
				}
				screen.Attributes[cy*32+cx] = attr.Byte()
			}
		}
	}
}
