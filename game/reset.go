package game

import (
	"github.com/dpt-reimpl/greatescape/anim"
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/behaviour"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/event"
	"github.com/dpt-reimpl/greatescape/item"
	"github.com/dpt-reimpl/greatescape/searchlight"
	"github.com/dpt-reimpl/greatescape/tile"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// Reset implements spec.md §4.1's reset: morale to maximum, inventory
// emptied, hero sealed in bed in hut 2 left, every character struct and
// movable item restored to its fixed default, and a "welcome" message
// sequence queued. The shadow roomdef table is NOT touched: it survives
// across games (spec.md §4.2).
func Reset(s *State) {
	s.Morale = MoraleMax
	s.Score = 0
	s.RedFlag = false
	s.InSolitary = false
	s.NightTime = false
	s.HeroInBed = true
	s.HeroAutomatic = false
	s.WireCutTicks = 0
	s.SearchlightsOn = false
	s.SearchlightCaughtIdx = -1
	s.Scroll = anim.CameraScroll{}

	s.Characters = assets.CharacterDefaults
	s.Characters[assets.Hero].OnScreen = true // slot 0 always holds the hero
	s.Movables = assets.MovableItemDefaults

	s.Items = item.NewTable()
	s.ItemEngine = item.NewEngine(s.Items)

	s.VC = vischar.NewTable()
	s.BehaviourEngine = behaviour.NewEngine(s.VC, &s.Characters, &s.Movables)
	s.Searchlights = searchlight.NewTable()
	s.Bell = event.Bell{}
	s.Messages = event.Queue{}
	s.Clock = event.Clock{}

	s.wireHooks()

	enterRoom(s, s.Characters[assets.Hero].Room, assets.HeroBedPosition)

	s.Messages.Enqueue(assets.MsgWelcome1)
	s.Messages.Enqueue(assets.MsgWelcome2)
}

// enterRoom positions the hero at heroPos in room, rebuilds the tile
// expander for that room, and re-centres the camera on the hero (spec.md
// §4.8's transition, reused by Reset for the initial room entry).
func enterRoom(s *State, room uint8, heroPos coords.Pos8) {
	s.CurrentRoom = room
	s.Outdoors = room == assets.Outdoors
	s.BehaviourEngine.CurrentRoom = room
	s.BehaviourEngine.Outdoors = s.Outdoors

	hero := s.heroVischar()
	hero.Room = room
	hero.Character = assets.Hero
	hero.Flags = vischar.FlagDrawable
	if s.Outdoors {
		hero.MI.Pos = coords.ScaleUp(heroPos)
	} else {
		hero.MI.Pos = heroPos.ToPos16()
	}
	hero.IsoPos = coords.Project(hero.MI.Pos)

	if s.Outdoors {
		col, row := outdoorOriginFor(heroPos)
		s.Outdoor = tile.NewOutdoorExpander(col, row)
	} else {
		s.Indoor = tile.ExpandRoom(room, s.Shadow)
	}

	s.CameraOrigin = coords.IsoPos{
		X: hero.IsoPos.X - int16(winbufColumnsPx/2),
		Y: hero.IsoPos.Y - int16(winbufRowsPx/2),
	}
	s.OffsetX, s.OffsetY = 0, 0
}

const (
	winbufColumnsPx = 24 * 8
	winbufRowsPx    = 17 * 8
)

// outdoorOriginFor maps a hero map position to the supertile macro-cell
// that should sit at the expander window's top-left corner, centring the
// 7x5 window on the hero.
func outdoorOriginFor(pos coords.Pos8) (col, row int) {
	col = int(pos.U)/(8*4) - 3
	row = int(pos.V)/(8*4) - 2
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	maxCol := assets.MapWidthSupertiles - 7
	maxRow := assets.MapHeightSupertiles - 5
	if col > maxCol {
		col = maxCol
	}
	if row > maxRow {
		row = maxRow
	}
	return col, row
}
