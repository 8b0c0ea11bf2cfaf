// Package tile implements the supertile/tile expander (spec.md §4.2):
// materialising indoor rooms from RLE object lists and the outdoor map
// from supertile references, plus the shadow roomdef table that lets a
// handful of room-definition bytes be mutated at runtime without ever
// writing into the immutable static data.
package tile

import "github.com/dpt-reimpl/greatescape/assets"

// shadowKey identifies one overridable (room, byte-offset) position.
type shadowKey struct {
	Room   uint8
	Offset uint8
}

// ShadowTable is the 16-entry side table of overridable roomdef bytes
// (beds, benches, blockage) that survives across games (spec.md §4.2).
type ShadowTable struct {
	overrides map[shadowKey]uint8
}

// MaxShadowEntries bounds the side table, matching the original's fixed
// 16-slot allocation.
const MaxShadowEntries = 16

// NewShadowTable returns an empty shadow table.
func NewShadowTable() *ShadowTable {
	return &ShadowTable{overrides: make(map[shadowKey]uint8, MaxShadowEntries)}
}

// GetRoomdef reads a roomdef byte, preferring the shadow override if one
// exists and falling back to the static placement table otherwise.
func (s *ShadowTable) GetRoomdef(room uint8, offset uint8) uint8 {
	if v, ok := s.overrides[shadowKey{Room: room, Offset: offset}]; ok {
		return v
	}
	rd := assets.RoomByNumber(room)
	if int(offset) >= len(rd.Placements) {
		return 0
	}
	return rd.Placements[offset].ObjectID
}

// SetRoomdef records an override, never touching the static data. If the
// table is already at capacity and this (room, offset) pair is new, one
// existing entry is evicted; which one follows map iteration order, not
// insertion age. Bed/bench overrides never fill the 16 slots in practice.
func (s *ShadowTable) SetRoomdef(room uint8, offset uint8, value uint8) {
	key := shadowKey{Room: room, Offset: offset}
	if _, exists := s.overrides[key]; !exists && len(s.overrides) >= MaxShadowEntries {
		for k := range s.overrides {
			delete(s.overrides, k)
			break
		}
	}
	s.overrides[key] = value
}

// Reset clears every override. The shadow table itself is long-lived
// (spec.md §4.2: "survives across games"), so Reset is never called from
// game.Reset — it exists only for tests that need a clean slate.
func (s *ShadowTable) Reset() {
	s.overrides = make(map[shadowKey]uint8, MaxShadowEntries)
}
