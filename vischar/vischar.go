// Package vischar implements the fixed 8-slot visible-character table:
// allocation, spawn, purge, and reset (spec.md §4.4).
package vischar

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/route"
)

// NumSlots and HeroSlot fix the vischar table's shape: slot 0 always
// holds the hero and is never freed (spec.md §4.4, §7 invariant 2).
const (
	NumSlots = 8
	HeroSlot = 0
)

// PursuitMode is the low nibble of Vischar.Flags (spec.md §4.7). The two
// hero-only values share the nibble with the pursuit modes rather than
// occupying separate bits.
type PursuitMode uint8

const (
	PursuitNone PursuitMode = iota
	PursuitPursue
	PursuitHassle
	PursuitDogFood
	PursuitSawBribe
	PursuitPickingLock
	PursuitCuttingWire
)

// Flag bits outside the pursuit-mode nibble.
const (
	FlagKindMask    = 0x0F
	FlagDontMoveMap = 1 << 4
	FlagDrawable    = 1 << 5
	FlagNoCollide   = 1 << 6
)

// DominanceFlag selects y-dominant (set) vs x-dominant (clear) axis
// movement (spec.md §4.7); it shares CounterAndFlags with the low-nibble
// movement-delay counter.
const DominanceFlag = 1 << 4

// MI is the position/sprite pair shared by character and movable-item
// vischars (the original's "mi" union member).
type MI struct {
	SpriteIndex uint8
	Pos         coords.Pos16
}

// Vischar is one slot of the active on-screen actor table.
type Vischar struct {
	Empty bool

	Character assets.CharacterID
	Flags     uint8

	Route        assets.Route
	Target       route.Target
	TargetIsDoor bool

	CounterAndFlags uint8

	AnimBase    uint8
	AnimCurrent uint8
	AnimIndex   uint8 // high bit: play in reverse

	Input          uint8
	DirectionCrawl uint8

	MI MI

	IsoPos coords.IsoPos
	Room   uint8

	WidthBytes uint8
	Height     uint8
}

// Kind reads the pursuit-mode nibble.
func (v *Vischar) Kind() PursuitMode { return PursuitMode(v.Flags & FlagKindMask) }

// SetKind writes the pursuit-mode nibble, leaving other flag bits intact.
func (v *Vischar) SetKind(k PursuitMode) {
	v.Flags = v.Flags&^FlagKindMask | uint8(k)
}

// Counter reads the low-nibble movement-delay counter.
func (v *Vischar) Counter() uint8 { return v.CounterAndFlags & 0x0F }

// SetCounter writes the movement-delay counter, leaving the dominance
// flag intact.
func (v *Vischar) SetCounter(n uint8) {
	v.CounterAndFlags = v.CounterAndFlags&^0x0F | (n & 0x0F)
}

// YDominant reports whether vertical movement currently takes priority.
func (v *Vischar) YDominant() bool { return v.CounterAndFlags&DominanceFlag != 0 }

// ToggleDominance flips which axis is primary.
func (v *Vischar) ToggleDominance() { v.CounterAndFlags ^= DominanceFlag }

// Table is the fixed 8-slot vischar table.
type Table struct {
	Slots [NumSlots]Vischar
}

// NewTable returns a table with every slot empty except slot 0, which
// always holds the hero (spec.md §7 invariant 2).
func NewTable() *Table {
	var t Table
	for i := range t.Slots {
		t.Slots[i].Empty = true
	}
	t.Slots[HeroSlot] = Vischar{Character: assets.Hero, Flags: FlagDrawable}
	return &t
}

// firstFreeSlot finds the lowest-numbered empty slot in 1..7, or -1.
func (t *Table) firstFreeSlot() int {
	for i := 1; i < NumSlots; i++ {
		if t.Slots[i].Empty {
			return i
		}
	}
	return -1
}

// Validator checks a candidate scratch position against bounds and
// collisions before a spawn commits; the caller supplies it so this
// package doesn't need to import the collision/bounds logic.
type Validator func(pos coords.Pos16) bool

// SpawnCharacter implements spec.md §4.4's spawn_character: it allocates
// a free slot for cs, scales its resting position up if the room is
// outdoors, validates the scratch position, and on success initialises
// the vischar and returns its slot.
func SpawnCharacter(t *Table, cs *assets.CharacterStruct, outdoors bool, validate Validator) (int, bool) {
	if cs.OnScreen {
		return -1, false
	}
	slot := t.firstFreeSlot()
	if slot == -1 {
		return -1, false
	}

	scratch := cs.Pos.ToPos16()
	if outdoors {
		scratch = coords.ScaleUp(cs.Pos)
	}
	if validate != nil && !validate(scratch) {
		return -1, false
	}

	cs.OnScreen = true
	v := &t.Slots[slot]
	*v = Vischar{
		Character: cs.ID,
		Room:      cs.Room,
		Route:     cs.Route,
		Flags:     FlagDrawable,
	}
	v.MI.Pos = scratch
	class := assets.ClassOf(cs.ID)
	v.AnimBase = assets.ClassAnimBase[class]
	base := assets.SpriteByIndex(assets.ClassSpriteBase[class])
	v.WidthBytes = uint8(base.Width) + 1 // shifted rows widen by one byte
	v.Height = base.Height
	v.IsoPos = coords.Project(scratch)
	return slot, true
}

// CameraWindow is the projected rectangle the purge/spawn grace borders
// expand against.
type CameraWindow struct {
	X0, X1, Y0, Y1 int16
}

func expand(w CameraWindow, cells int16) CameraWindow {
	d := cells * 8
	return CameraWindow{X0: w.X0 - d, X1: w.X1 + d, Y0: w.Y0 - d, Y1: w.Y1 + d}
}

func inside(p coords.IsoPos, w CameraWindow) bool {
	return p.X >= w.X0 && p.X < w.X1 && p.Y >= w.Y0 && p.Y < w.Y1
}

// InSpawnWindow reports whether an iso position lies within the camera
// window expanded by spawn_character's 8-cell grace border.
func InSpawnWindow(p coords.IsoPos, camera CameraWindow) bool {
	return inside(p, expand(camera, 8))
}

// InPurgeWindow reports whether an iso position lies within the camera
// window expanded by purge_invisible_characters' 9-cell grace border.
func InPurgeWindow(p coords.IsoPos, camera CameraWindow) bool {
	return inside(p, expand(camera, 9))
}

// wanderWindowFor returns the route a dog resets to when purged, based
// on which dog it is (spec.md §4.4).
func wanderWindowFor(id assets.CharacterID) assets.Route {
	if id == assets.Dog2 {
		return assets.Route{Index: assets.RouteIndexWander, Step: 24}
	}
	return assets.Route{Index: assets.RouteIndexWander, Step: 0}
}

// PurgeInvisibleCharacters inspects every non-hero slot and frees any
// whose room no longer matches currentRoom or whose iso position has
// left the purge window (spec.md §4.4).
func PurgeInvisibleCharacters(t *Table, currentRoom uint8, camera CameraWindow, characters *[assets.NumCharacters]assets.CharacterStruct, movables *[3]assets.MovableItemDefault) {
	for i := 1; i < NumSlots; i++ {
		v := &t.Slots[i]
		if v.Empty {
			continue
		}
		if v.Room != currentRoom || !InPurgeWindow(v.IsoPos, camera) {
			ResetVisibleCharacter(t, i, characters, movables)
		}
	}
}

// ResetVisibleCharacter frees slot i, saving its live state back to the
// owning character struct or movable-item table per spec.md §4.4.
func ResetVisibleCharacter(t *Table, slot int, characters *[assets.NumCharacters]assets.CharacterStruct, movables *[3]assets.MovableItemDefault) {
	if slot <= 0 || slot >= NumSlots {
		panic(fmt.Sprintf("vischar: reset of invalid slot %d", slot))
	}
	v := &t.Slots[slot]
	if v.Empty {
		return
	}

	if assets.IsMovableItem(v.Character) {
		idx := int(v.Character) - int(assets.MovableStove)
		movables[idx].Pos = v.MI.Pos
		movables[idx].SpriteIdx = v.MI.SpriteIndex
	} else {
		cs := &characters[v.Character]
		cs.Pos = v.MI.Pos.Narrow()
		cs.Room = v.Room
		cs.OnScreen = false
		if v.Character == assets.Dog1 || v.Character == assets.Dog2 {
			cs.Route = wanderWindowFor(v.Character)
		} else {
			cs.Route = v.Route
		}
	}

	*v = Vischar{Empty: true}
}
