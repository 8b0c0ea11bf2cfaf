// Command greatescape runs the simulation core against a real window,
// the way gintendo.go wires console.Bus to ebiten.RunGame for the
// teacher's NES core: the simulation runs on its own goroutine, and
// ebiten.RunGame on the main goroutine only pumps the window and paints
// whatever the simulation goroutine last wrote into the shared screen.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/cmd/greatescape/ebitenhost"
	"github.com/dpt-reimpl/greatescape/debugmon"
	"github.com/dpt-reimpl/greatescape/game"
)

var (
	keymapPath = flag.String("keymap", "", "Path to a keymap.toml overriding the default keyboard row.")
	debug      = flag.Bool("debug", false, "Run the interactive debug monitor on stdin/stdout instead of the window loop.")
)

func main() {
	flag.Parse()

	km := loadKeyMapping(*keymapPath)
	host := ebitenhost.New(km)
	state := game.NewState(assets.Default())

	if *debug {
		runDebugMonitor(state, host)
		return
	}

	go runSimulation(state, host)

	if err := ebiten.RunGame(ebitenhost.NewApp(host)); err != nil {
		log.Fatal(err)
	}
	host.RequestQuit()
}

// runSimulation implements spec.md §6.4's entry-point sequence: setup,
// block in the menu until the player starts, setup2, then tick Main
// forever. It is the goroutine body gintendo.go's Run(ctx) is grounded
// on.
func runSimulation(s *game.State, h *ebitenhost.Host) {
	game.Setup(s, h)

	if game.Menu(s, h) < 0 {
		return
	}
	game.Setup2(s, h)

	h.Run(func() bool {
		return game.Main(s, h)
	})
}

// runDebugMonitor replaces the windowed loop with debugmon's interactive
// REPL, grounded on console.machine.BIOS's "debugger instead of the real
// run loop" mode (-debug skips ebiten.RunGame entirely, same as the
// teacher's BIOS mode runs without its PPU ever reaching a screen).
func runDebugMonitor(s *game.State, h *ebitenhost.Host) {
	game.Setup(s, h)
	game.Setup2(s, h)
	debugmon.New(os.Stdin, os.Stdout).Run(s, h)
}
