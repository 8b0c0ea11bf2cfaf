// Package anim implements the per-vischar animation engine: frame
// selection, position-delta application, and the camera sub-pixel
// scroll-phase state machine (spec.md §4.5).
package anim

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// noMapMove mirrors assets' unexported mapMoveNone sentinel.
const noMapMove = 0xFF

// Touch is the per-step contact test (spec.md §4.7) that validates a
// candidate position/sprite before a step commits. Supplied by the
// behaviour package so this one doesn't need to know about doors,
// bounds, or collision.
type Touch func(v *vischar.Vischar, candidatePos coords.Pos16, candidateSpriteIndex uint8) bool

// Step advances one vischar's animation by one tick (spec.md §4.5).
// input carries the current frame's requested movement bits, including
// the synthetic "kick" bit that forces re-selection.
func Step(v *vischar.Vischar, input uint8, touch Touch) {
	if v.Empty {
		return
	}
	v.Flags |= vischar.FlagNoCollide

	kicked := input&machine.InputKick != 0
	candidateInput := machine.MovementOnly(input)

	var animCurrent, animIndex uint8
	if kicked {
		animCurrent, animIndex = selectAnim(v.DirectionCrawl, candidateInput)
	} else {
		animCurrent, animIndex = stepOrReselect(v.DirectionCrawl, candidateInput, v.AnimCurrent, v.AnimIndex)
	}

	anim := assets.AnimByIndex(animCurrent)
	frameIdx := animIndex &^ assets.ReverseBit
	if int(frameIdx) >= len(anim.Frames) {
		frameIdx = 0
	}
	frame := anim.Frames[frameIdx]

	savedPos := v.MI.Pos.Add(frame.DU, frame.DV, frame.DW)
	candidateSprite := frame.SpriteIndexAndFlip

	if touch != nil && !touch(v, savedPos, candidateSprite) {
		return // rejected: position and frame index stay put this tick
	}

	v.Input = candidateInput
	v.AnimCurrent = animCurrent
	v.AnimIndex = animIndex
	v.MI.Pos = savedPos
	v.MI.SpriteIndex = candidateSprite
	v.IsoPos = coords.Project(savedPos)

	// The committed frame also commits the facing: a reversed animation
	// walks back toward its FromDir, a forward one toward its ToDir.
	facing := anim.ToDir
	if animIndex&assets.ReverseBit != 0 {
		facing = anim.FromDir
	}
	v.DirectionCrawl = v.DirectionCrawl&^0x03 | uint8(facing)&0x03
}

// selectAnim picks a fresh animation from animindices for direction/crawl
// and input, returning its table index and the AnimIndex seeded at the
// correct end (reverse animations start at their last frame).
func selectAnim(directionCrawl, input uint8) (animCurrent, animIndex uint8) {
	idx, reverse := assets.AnimIndexFor(directionCrawl, input)
	a := assets.AnimByIndex(idx)
	if reverse {
		return idx, uint8(len(a.Frames)-1) | assets.ReverseBit
	}
	return idx, 0
}

// stepOrReselect advances curCurrent/curIndex's frame index one step in
// its current direction, re-selecting a fresh animation on overrun. It
// reads but never writes the vischar: the caller commits the result only
// once touch() has accepted the frame it produces.
func stepOrReselect(directionCrawl, input, curCurrent, curIndex uint8) (animCurrent, animIndex uint8) {
	a := assets.AnimByIndex(curCurrent)
	reverse := curIndex&assets.ReverseBit != 0
	cur := curIndex &^ assets.ReverseBit

	if reverse {
		if cur == 0 {
			return selectAnim(directionCrawl, input)
		}
		return curCurrent, (cur - 1) | assets.ReverseBit
	}

	next := cur + 1
	if int(next) >= len(a.Frames) {
		return selectAnim(directionCrawl, input)
	}
	return curCurrent, next
}

// MapMoveDirFor reports the committed animation's declared map-scroll
// direction, or false if it never scrolls the camera.
func MapMoveDirFor(v *vischar.Vischar) (dir uint8, scrolls bool) {
	a := assets.AnimByIndex(v.AnimCurrent)
	if a.MapMoveDir == noMapMove {
		return 0, false
	}
	return a.MapMoveDir, true
}

// ScrollAxis is which screen axis, if any, the camera shifts by one
// sub-pixel this tick.
type ScrollAxis uint8

const (
	ScrollNone ScrollAxis = iota
	ScrollX
	ScrollY
)

// CameraScroll tracks the 0..3 sub-pixel phase per scroll direction
// (spec.md §4.5's move_map_y), alternating y-shift, x-shift, and no-shift
// ticks rather than moving a full pixel every frame.
type CameraScroll struct {
	Phase [4]uint8
}

// Step consumes one phase tick for direction dir (0..3) and returns which
// axis to shift the camera by, if any. A move is suppressed entirely when
// clamped is true (camera already at the map edge in that direction).
func (c *CameraScroll) Step(dir uint8, clamped bool) ScrollAxis {
	if clamped {
		return ScrollNone
	}
	d := dir & 0x03
	phase := c.Phase[d]
	c.Phase[d] = (phase + 1) % 4
	switch phase {
	case 0, 2:
		return ScrollY
	case 1:
		return ScrollX
	default:
		return ScrollNone
	}
}

// ShouldScroll combines MapMoveDirFor and CameraScroll.Step: the
// authoritative per-tick answer to "does the map move, and along which
// axis" (spec.md §4.5).
func (c *CameraScroll) ShouldScroll(v *vischar.Vischar, clamped bool) ScrollAxis {
	dir, ok := MapMoveDirFor(v)
	if !ok {
		return ScrollNone
	}
	return c.Step(dir, clamped)
}
