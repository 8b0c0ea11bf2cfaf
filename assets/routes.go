package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// Route-byte encoding (spec.md §3):
//
//	0..39    index a door (bit 7 is the "reverse" flag, stripped before use)
//	40..117  index a location, at (byte-40)
//	255      terminates the route (ROUTE_ENDS)
const (
	RouteByteEnd       = 0xFF
	RouteByteLocBase   = 40
	RouteByteLocLimit  = 118 // exclusive
	RouteReverseBit    = 0x80
	RouteIndexWander   = 255
)

// RouteTable holds the route-byte arrays keyed by 7-bit route index.
// Populated with a small placeholder set covering every character_event
// branch named in spec.md §4.6: hero's hut2 route, a guard patrol that
// reverses at both ends, the commandant's solitary-release route, and a
// wander window.
var RouteTable = map[uint8][]byte{
	1: {RouteByteLocBase + 0, RouteByteLocBase + 1, RouteByteEnd}, // hero hut2 left->right
	2: {0, 2, RouteByteEnd},                                       // guard patrol via two doors
	3: {RouteByteLocBase + 2, RouteByteEnd},                       // commandant solitary-release route
	4: {RouteByteLocBase + 3, RouteByteLocBase + 4, RouteByteLocBase + 5, RouteByteLocBase + 6,
		RouteByteLocBase + 7, RouteByteLocBase + 8, RouteByteLocBase + 9, RouteByteLocBase + 10}, // wander window base
}

// RouteBytes returns the byte array for a route index, panicking on an
// unknown index (spec.md §7: route index is an assertable invariant).
func RouteBytes(index uint8) []byte {
	rb, ok := RouteTable[index&0x7F]
	if !ok {
		panic(fmt.Sprintf("assets: unknown route index %d", index&0x7F))
	}
	return rb
}

// LocationTable holds the named locations addressed by route bytes 40..117
// (spec.md §3). Index i corresponds to route byte 40+i.
var LocationTable = buildLocationTable()

func buildLocationTable() []coords.Pos8 {
	locs := make([]coords.Pos8, 78)
	// A handful of real, distinct locations; the rest default to a
	// bench-adjacent rest spot so every wander-window lookup resolves
	// to a valid location (spec scope excludes authoring the full
	// outdoor location set, §1).
	locs[0] = coords.Pos8{U: 8, V: 8, W: 0}    // hut2 left bed
	locs[1] = coords.Pos8{U: 20, V: 8, W: 0}   // hut2 right bed
	locs[2] = coords.Pos8{U: 12, V: 48, W: 0}  // exercise yard centre
	for i := 3; i < len(locs); i++ {
		locs[i] = coords.Pos8{U: uint8(40 + i), V: uint8(40 + i), W: 0}
	}
	return locs
}

// LocationByIndex returns a location by its 0-based index, panicking on an
// out-of-range index.
func LocationByIndex(idx int) coords.Pos8 {
	if idx < 0 || idx >= len(LocationTable) {
		panic(fmt.Sprintf("assets: location index %d out of range", idx))
	}
	return LocationTable[idx]
}

// CharacterEvent identifies one of the 24 route-id-keyed handlers
// route_ended dispatches to (spec.md §4.6).
type CharacterEvent uint8

const (
	EventNone CharacterEvent = iota
	EventGoToBed
	EventGoToBreakfast
	EventSitDown
	EventSleepInAssignedBed
	EventAcceptSolitaryRelease
	EventCommandantToYard
	EventWanderTop
	EventWanderLeft
	EventWanderYard
	EventExitHut2
	EventExitHut3
	EventHeroSits
	EventHeroSleeps
	EventHeroLeaveSolitary
)

// characterEventKey packs a route index with its reverse bit, matching the
// 24-entry map spec.md §4.6 describes.
type characterEventKey struct {
	RouteIndex uint8
	Reverse    bool
}

var characterEventTable = map[characterEventKey]CharacterEvent{
	{RouteIndex: 1, Reverse: false}: EventGoToBed,
	{RouteIndex: 1, Reverse: true}:  EventHeroSits,
	{RouteIndex: 2, Reverse: false}: EventWanderLeft,
	{RouteIndex: 2, Reverse: true}:  EventWanderTop,
	{RouteIndex: 3, Reverse: false}: EventAcceptSolitaryRelease,
	{RouteIndex: 3, Reverse: true}:  EventHeroLeaveSolitary,
	{RouteIndex: 4, Reverse: false}: EventWanderYard,
}

// CharacterEventFor looks up the handler for a route ending, defaulting to
// EventNone for routes with no terminal behaviour (most NPC patrol routes
// simply reverse and continue, spec.md §4.6).
func CharacterEventFor(routeIndex uint8, reverse bool) CharacterEvent {
	return characterEventTable[characterEventKey{RouteIndex: routeIndex, Reverse: reverse}]
}
