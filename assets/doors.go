package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// Direction is a compass-style facing used by doors, routes and animation.
type Direction uint8

const (
	DirTopLeft Direction = iota
	DirTopRight
	DirBottomRight
	DirBottomLeft
)

// Door is one side of a door pair: a packed room+direction plus the
// mappos8 standing point for that side (spec.md §3).
type Door struct {
	Room      uint8
	Direction Direction
	Pos       coords.Pos8
}

// Outdoor reports whether this side of the door faces outdoors.
func (d Door) Outdoor() bool { return d.Room == Outdoors }

// DoorTable pairs its entries: entry 2k and 2k+1 are the two sides of
// pair k, and every pair here has one outdoor side (spec.md §4.8). It holds
// a small placeholder set of 8 entries (4 pairs), not the full door list:
// main gate (pair 0), hut2 door (pair 1), hut3 door (pair 2), cell door
// (pair 3).
var DoorTable = buildDoorTable()

func buildDoorTable() []Door {
	d := make([]Door, 0, 8)
	add := func(a, b Door) { d = append(d, a, b) }

	// Pair 0: main gate.
	add(
		Door{Room: Outdoors, Direction: DirBottomRight, Pos: coords.Pos8{U: 214, V: 138, W: 6}},
		Door{Room: Outdoors, Direction: DirTopLeft, Pos: coords.Pos8{U: 136, V: 136, W: 6}},
	)
	// Pair 1: hut 2 exterior door.
	add(
		Door{Room: Outdoors, Direction: DirTopRight, Pos: coords.Pos8{U: 60, V: 40, W: 0}},
		Door{Room: 2, Direction: DirBottomLeft, Pos: coords.Pos8{U: 60, V: 24, W: 0}},
	)
	// Pair 2: hut 2 right-hand-side door.
	add(
		Door{Room: Outdoors, Direction: DirTopRight, Pos: coords.Pos8{U: 64, V: 44, W: 0}},
		Door{Room: 3, Direction: DirBottomLeft, Pos: coords.Pos8{U: 40, V: 60, W: 0}},
	)
	// Pair 3: solitary cell door.
	add(
		Door{Room: Outdoors, Direction: DirTopLeft, Pos: coords.Pos8{U: 90, V: 50, W: 0}},
		Door{Room: CellRoom, Direction: DirBottomRight, Pos: coords.Pos8{U: 44, V: 30, W: 0}},
	)

	return d
}

// DoorByIndex returns the side at the given index (0..39 range per
// spec.md §3 for route targets), panicking on an invalid index.
func DoorByIndex(idx int) Door {
	if idx < 0 || idx >= len(DoorTable) {
		panic(fmt.Sprintf("assets: door index %d out of range", idx))
	}
	return DoorTable[idx]
}

// PeerIndex returns the other side of idx's pair.
func PeerIndex(idx int) int {
	if idx%2 == 0 {
		return idx + 1
	}
	return idx - 1
}

// LockedDoor tracks whether one of the 9 lockable door pairs is locked.
type LockedDoor struct {
	DoorIndex int
	Locked    bool
}

// LockedDoorsDefault is the starting lock state. Entries 0 and 1 are the
// two main gates, which also encode the exercise-yard open/closed state
// (spec.md §3).
var LockedDoorsDefault = []LockedDoor{
	{DoorIndex: 0, Locked: true},
	{DoorIndex: 1, Locked: true},
	{DoorIndex: 2, Locked: false},
	{DoorIndex: 3, Locked: false},
	{DoorIndex: 4, Locked: true},
	{DoorIndex: 5, Locked: true},
	{DoorIndex: 6, Locked: false},
	{DoorIndex: 7, Locked: false},
	{DoorIndex: 8, Locked: true},
}

// InteriorDoor is a live, per-room door reference: an index into DoorTable
// plus whether it should be read in reverse.
type InteriorDoor struct {
	DoorIndex int
	Reverse   bool
}

// InteriorDoorsForRoom rebuilds a room's up-to-4 live interior doors on
// room entry (spec.md §3), referencing each pair's indoor side.
func InteriorDoorsForRoom(room uint8) []InteriorDoor {
	switch room {
	case 2:
		return []InteriorDoor{{DoorIndex: 3, Reverse: false}}
	case 3:
		return []InteriorDoor{{DoorIndex: 5, Reverse: false}}
	case CellRoom:
		return []InteriorDoor{{DoorIndex: 7, Reverse: false}}
	default:
		return nil
	}
}
