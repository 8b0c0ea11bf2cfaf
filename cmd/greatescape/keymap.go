package main

import (
	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dpt-reimpl/greatescape/cmd/greatescape/ebitenhost"
)

// keymapFile is the on-disk shape of a user keymap.toml: one ebiten key
// name per direction (§6.3's user-configurable keyboard row; Protek,
// Kempston and Sinclair are fixed mappings and never come from a file).
type keymapFile struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Fire  string `toml:"fire"`
}

// keyByName resolves the small subset of ebiten.Key names a keymap.toml
// is expected to use; an unrecognised name falls back to the default for
// that slot rather than failing the whole load, so a typo in one line
// doesn't strand the player with no controls at all.
func keyByName(name string, fallback ebiten.Key) ebiten.Key {
	switch name {
	case "A":
		return ebiten.KeyA
	case "O":
		return ebiten.KeyO
	case "Q":
		return ebiten.KeyQ
	case "P":
		return ebiten.KeyP
	case "Space":
		return ebiten.KeySpace
	case "Up":
		return ebiten.KeyArrowUp
	case "Down":
		return ebiten.KeyArrowDown
	case "Left":
		return ebiten.KeyArrowLeft
	case "Right":
		return ebiten.KeyArrowRight
	case "":
		return fallback
	default:
		return fallback
	}
}

// loadKeyMapping reads path as TOML and overlays it onto
// ebitenhost.DefaultKeyMapping; a missing or unparsable file silently
// keeps the default, matching the original's hard-coded QAOP-space
// fallback when no configuration exists (spec.md §6.3).
func loadKeyMapping(path string) ebitenhost.KeyMapping {
	km := ebitenhost.DefaultKeyMapping
	if path == "" {
		return km
	}

	var f keymapFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return km
	}

	km.Left = keyByName(f.Left, km.Left)
	km.Right = keyByName(f.Right, km.Right)
	km.Up = keyByName(f.Up, km.Up)
	km.Down = keyByName(f.Down, km.Down)
	km.Fire = keyByName(f.Fire, km.Fire)
	return km
}
