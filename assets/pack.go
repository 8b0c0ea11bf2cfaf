package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// Pack bundles every read-only data table the simulation core consumes.
// Adapted from mappers.Mapper's registry style: alternate data packs (a
// test-fixture pack, say) can be registered and selected by name the same
// way a cartridge mapper is selected by numeric id.
type Pack interface {
	Name() string
	Room(room uint8) *RoomDef
	Object(id uint8) Object
	Door(idx int) Door
	Route(index uint8) []byte
	Location(idx int) coords.Pos8
}

// registry is the global pack registry, keyed by name.
var registry = map[string]Pack{}

// RegisterPack adds a pack to the registry, panicking on a duplicate name
// (mirrors mappers.RegisterMapper's duplicate-registration panic).
func RegisterPack(p Pack) {
	if _, ok := registry[p.Name()]; ok {
		panic(fmt.Sprintf("assets: pack %q already registered", p.Name()))
	}
	registry[p.Name()] = p
}

// GetPack returns a registered pack by name.
func GetPack(name string) (Pack, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown data pack %q", name)
	}
	return p, nil
}

// defaultPack serves the package-level placeholder tables declared
// throughout this package.
type defaultPack struct{}

func (defaultPack) Name() string                    { return "default" }
func (defaultPack) Room(room uint8) *RoomDef         { return RoomByNumber(room) }
func (defaultPack) Object(id uint8) Object           { return ObjectByID(id) }
func (defaultPack) Door(idx int) Door                { return DoorByIndex(idx) }
func (defaultPack) Route(index uint8) []byte         { return RouteBytes(index) }
func (defaultPack) Location(idx int) coords.Pos8     { return LocationByIndex(idx) }

func init() {
	RegisterPack(defaultPack{})
}

// Default returns the built-in placeholder data pack.
func Default() Pack {
	p, err := GetPack("default")
	if err != nil {
		panic(err) // registered unconditionally in init; can never happen
	}
	return p
}
