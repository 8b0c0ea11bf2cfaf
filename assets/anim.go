package assets

import "fmt"

// AnimFrame is one frame of an animation: a position delta plus the
// sprite index to plot, with the top bit of the index meaning "flip
// horizontally" (spec.md §4.5).
type AnimFrame struct {
	DU, DV, DW         int8
	SpriteIndexAndFlip uint8
}

func (f AnimFrame) SpriteIndex() uint8 { return f.SpriteIndexAndFlip &^ 0x80 }
func (f AnimFrame) Flip() bool         { return f.SpriteIndexAndFlip&0x80 != 0 }

// mapMoveNone marks an animation that never scrolls the camera.
const mapMoveNone = 0xFF

// Anim is one of the 24 animations (walk/turn/wait/crawl/crawl-turn/
// crawl-wait, times four directions).
type Anim struct {
	NFrames    uint8
	FromDir    Direction
	ToDir      Direction
	MapMoveDir uint8 // Direction, or mapMoveNone
	Frames     []AnimFrame
}

// Animation-table layout. Indices 0..3 are walk animations (one per
// direction, in Direction order), 4..7 wait, 8..11 turn (each from one
// direction to the next), 12..15 crawl-walk, 16..19 crawl-wait, 20..23
// crawl-turn — the 24 animations spec.md §4.5 names.
const (
	animWalkBase      = 0
	animWaitBase      = 4
	animTurnBase      = 8
	animCrawlWalkBase = 12
	animCrawlWaitBase = 16
	animCrawlTurnBase = 20
)

// AnimTable holds all animations by index. Frame data is small but
// internally consistent — each walk direction's per-frame (du,dv) moves
// the actor along the axis its direction name projects to, so the
// behaviour engine's axis deltas shrink as the animation plays. The
// original's hand-authored byte tables are asset content, out of scope
// (spec.md §1).
var AnimTable = buildAnimTable()

// dirDelta gives the per-frame map-space step for a walk animation in
// each direction. With the projection x=(0x200-u+v)*2, y=0x800-u-v-w:
// +u moves up-left on screen, +v up-right, so top-left is +u, top-right
// +v, and the bottom directions their negations.
func dirDelta(dir Direction) (du, dv int8) {
	switch dir {
	case DirTopLeft:
		return 1, 0
	case DirTopRight:
		return 0, 1
	case DirBottomRight:
		return -1, 0
	default: // DirBottomLeft
		return 0, -1
	}
}

func walkAnim(dir Direction, sprite uint8, nframes int) Anim {
	du, dv := dirDelta(dir)
	frames := make([]AnimFrame, nframes)
	for i := range frames {
		frames[i] = AnimFrame{DU: du, DV: dv, SpriteIndexAndFlip: sprite + uint8(i)}
	}
	return Anim{
		NFrames: uint8(nframes), FromDir: dir, ToDir: dir, MapMoveDir: uint8(dir),
		Frames: frames,
	}
}

func waitAnim(dir Direction, sprite uint8) Anim {
	return Anim{
		NFrames: 1, FromDir: dir, ToDir: dir, MapMoveDir: mapMoveNone,
		Frames: []AnimFrame{{SpriteIndexAndFlip: sprite}},
	}
}

func turnAnim(from, to Direction, sprite uint8) Anim {
	return Anim{
		NFrames: 2, FromDir: from, ToDir: to, MapMoveDir: mapMoveNone,
		Frames: []AnimFrame{{SpriteIndexAndFlip: sprite}, {SpriteIndexAndFlip: sprite + 1}},
	}
}

func buildAnimTable() []Anim {
	dirs := []Direction{DirTopLeft, DirTopRight, DirBottomRight, DirBottomLeft}
	t := make([]Anim, 0, 24)

	for _, dir := range dirs {
		t = append(t, walkAnim(dir, 0, 4))
	}
	for _, dir := range dirs {
		t = append(t, waitAnim(dir, 4))
	}
	for i, from := range dirs {
		t = append(t, turnAnim(from, dirs[(i+1)%len(dirs)], 5))
	}
	// Crawl variants: two-frame walks (the crawl cycle is shorter), a
	// single-frame wait, and the crawl turns. Crawl sprites are the
	// wider 24-pixel set.
	for _, dir := range dirs {
		du, dv := dirDelta(dir)
		t = append(t, Anim{NFrames: 2, FromDir: dir, ToDir: dir, MapMoveDir: uint8(dir),
			Frames: []AnimFrame{
				{DU: du, DV: dv, SpriteIndexAndFlip: 7},
				{DU: du, DV: dv, SpriteIndexAndFlip: 8},
			}})
	}
	for _, dir := range dirs {
		t = append(t, Anim{NFrames: 1, FromDir: dir, ToDir: dir, MapMoveDir: mapMoveNone,
			Frames: []AnimFrame{{SpriteIndexAndFlip: 9}}})
	}
	for i, from := range dirs {
		t = append(t, Anim{NFrames: 2, FromDir: from, ToDir: dirs[(i+1)%len(dirs)], MapMoveDir: mapMoveNone,
			Frames: []AnimFrame{{SpriteIndexAndFlip: 9}, {SpriteIndexAndFlip: 9}}})
	}
	return t
}

// AnimByIndex looks up an animation, panicking on an out-of-range index
// (spec.md §7).
func AnimByIndex(idx uint8) Anim {
	if int(idx) >= len(AnimTable) {
		panic(fmt.Sprintf("assets: animation index %d out of range", idx))
	}
	return AnimTable[idx]
}

// AnimIndicesTable is the 8x9 (direction+crawl, input) -> animation index
// lookup (spec.md §4.5). The top bit of a stored entry means "play in
// reverse". Row index 0..3 is walking direction, 4..7 is the crawling
// variant of the same direction. The column is the additive input state
// 0..8 (machine.InputNone..InputRightDown).
var AnimIndicesTable = buildAnimIndicesTable()

// ReverseBit marks an AnimIndicesTable entry as "play this animation in
// reverse".
const ReverseBit = 0x80

// inputDirection maps each non-zero movement input state to the facing
// direction it walks: the diagonals map directly (left+up walks
// up-left), and a lone axis key resolves to the nearer isometric
// diagonal.
var inputDirection = [9]Direction{
	1: DirTopRight,    // up
	2: DirBottomLeft,  // down
	3: DirTopLeft,     // left
	4: DirTopLeft,     // left+up
	5: DirBottomLeft,  // left+down
	6: DirBottomRight, // right
	7: DirTopRight,    // right+up
	8: DirBottomRight, // right+down
}

func buildAnimIndicesTable() [8][9]uint8 {
	var t [8][9]uint8
	for dir := 0; dir < 4; dir++ {
		t[dir][0] = uint8(animWaitBase + dir)
		t[dir+4][0] = uint8(animCrawlWaitBase + dir)
		for input := 1; input < 9; input++ {
			target := inputDirection[input]
			t[dir][input] = uint8(animWalkBase) + uint8(target)
			t[dir+4][input] = uint8(animCrawlWalkBase) + uint8(target)
		}
	}
	return t
}

// AnimIndexFor looks up the starting animation for a facing direction
// (0..7, the low 3 bits of which encode crawl as +4) and a movement
// input state (0..8, fire and kick already stripped).
func AnimIndexFor(dirAndCrawl uint8, input uint8) (idx uint8, reverse bool) {
	if int(dirAndCrawl) >= len(AnimIndicesTable) {
		panic(fmt.Sprintf("assets: direction+crawl %d out of range", dirAndCrawl))
	}
	if int(input) >= len(AnimIndicesTable[0]) {
		input = 0
	}
	raw := AnimIndicesTable[dirAndCrawl][input]
	return raw &^ ReverseBit, raw&ReverseBit != 0
}
