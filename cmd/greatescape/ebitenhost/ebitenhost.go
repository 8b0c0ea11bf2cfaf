// Package ebitenhost is a runnable machine.Machine backed by ebiten: a
// window/pixel surface, keyboard port reads (the arrow keys also feed the
// Kempston port; no gamepad is polled), and a border-colour
// flash standing in for the original's 1-bit speaker (spec.md §6.1).
// Grounded on console.Bus, which plays the identical role for an NES
// core: it implements ebiten.Game (Layout/Update/Draw), owns the
// concrete window, and is the only package in the tree allowed to
// import ebiten.
package ebitenhost

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dpt-reimpl/greatescape/machine"
)

// tStateHz is the reference ZX Spectrum CPU clock: Sleep converts a
// T-state count into a real duration at this rate, rather than no-oping
// the wait, since the simulation loop now runs on its own goroutine
// (spec.md §5: "the host converts T-states to wall-clock time").
const tStateHz = 3500000

// scale is the window-to-framebuffer pixel multiplier: the default window
// is 3x the 256x192 screen.
const scale = 3

// palette gives the 8 ZX Spectrum ink/paper colours in non-bright form;
// Host doesn't yet read Bright, since the core never sets it (no
// attribute-driven UI is in scope here beyond the searchlight overlay,
// which ebitenhost renders from machine.Screen.Attributes like any other
// attribute cell).
var palette = [8]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 215, 255},
	{215, 0, 0, 255},
	{215, 0, 215, 255},
	{0, 215, 0, 255},
	{0, 215, 215, 255},
	{215, 215, 0, 255},
	{215, 215, 215, 255},
}

// KeyMapping names an ebiten key for each of the five Machine ports the
// default Keyboard input routine polls.
type KeyMapping struct {
	Left, Right, Up, Down, Fire ebiten.Key
}

// DefaultKeyMapping matches machine.DefaultKeyMap's QAOP-space layout.
var DefaultKeyMapping = KeyMapping{
	Left:  ebiten.KeyA,
	Right: ebiten.KeyO,
	Up:    ebiten.KeyQ,
	Down:  ebiten.KeyP,
	Fire:  ebiten.KeySpace,
}

// Host is an ebiten.Game wrapping one machine.Screen and the port state
// the core's input routines read. It satisfies machine.Machine directly,
// the way console.Bus satisfies both ebiten.Game and the CPU/PPU's bus
// interface in one value.
type Host struct {
	screen machine.Screen
	keys   KeyMapping

	speakerOn bool
	quit      atomic.Bool
}

// New builds a Host with every keyboard half-row latched high (no key
// pressed, active-low per spec.md §6.3) and the given key mapping wired
// to the five configurable ports.
func New(km KeyMapping) *Host {
	h := &Host{keys: km}
	ebiten.SetWindowSize(256*scale, 192*scale)
	ebiten.SetWindowTitle("The Great Escape")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return h
}

// Screen returns the mutable framebuffer the core draws into.
func (h *Host) Screen() *machine.Screen { return &h.screen }

// In services a ZX-style port read. Only the five configured keyboard
// half-rows and the Kempston joystick port are modeled; any other port
// floats high (no key pressed), matching an unused keyboard row.
func (h *Host) In(port uint16) uint8 {
	if port == machine.PortKempston {
		return h.kempstonState()
	}

	var v uint8 = 0xFF
	for _, pm := range []struct {
		port uint16
		bit  uint8
		key  ebiten.Key
	}{
		{0xFDFE, 0, h.keys.Left},
		{0xDFFE, 1, h.keys.Right},
		{0xFBFE, 0, h.keys.Up},
		{0xDFFE, 0, h.keys.Down},
		{0x7FFE, 0, h.keys.Fire},
	} {
		if pm.port != port {
			continue
		}
		if ebiten.IsKeyPressed(pm.key) {
			v &^= 1 << pm.bit
		}
	}
	return v
}

// kempstonState packs arrow-key state into the Kempston joystick's
// 000FUDLR active-high layout, so a host running without a keyboard
// mapping configured can still drive the hero via Kempston.Sinclair
// users get the same treatment from machine.Sinclair's fixed row.
func (h *Host) kempstonState() uint8 {
	var v uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v |= 0x01
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v |= 0x02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v |= 0x04
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v |= 0x08
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		v |= 0x10
	}
	return v
}

// Out writes port 0x00FE: bit 4 is the speaker (latched for Draw to
// render as a border flash), bits 0-2 the border colour (spec.md §6.1).
func (h *Host) Out(port uint16, value uint8) {
	if port != machine.PortBorder {
		return
	}
	h.speakerOn = value&machine.SpeakerBit != 0
}

// Draw notifies the host of a dirty region. ebitenhost always redraws
// the whole framebuffer in its own Draw callback, so this is a no-op;
// the hook exists for hosts that maintain a persistent dirty-rect cache.
func (h *Host) Draw(_ *machine.Rect) {}

// Stamp is a no-op here: ebiten's own frame pacing stands in for the
// teacher's wall-clock Stamp/Sleep calibration (console.Bus runs the CPU
// inside Update, which ebiten already paces to 60Hz).
func (h *Host) Stamp() {}

// Sleep converts tStates to a real duration at tStateHz and sleeps for
// it, then reports whether the host wants the core to quit. The
// simulation loop runs on its own goroutine (see Run), so this genuinely
// blocks that goroutine rather than the ebiten render loop (spec.md §5:
// "the host converts T-states to wall-clock time").
func (h *Host) Sleep(tStates uint32) bool {
	time.Sleep(time.Duration(tStates) * time.Second / tStateHz)
	return h.quit.Load()
}

// RequestQuit marks the host as wanting the core to stop at the next
// Sleep call.
func (h *Host) RequestQuit() { h.quit.Store(true) }

// Quit reports whether RequestQuit has been called.
func (h *Host) Quit() bool { return h.quit.Load() }

// Run calls tick repeatedly until it reports quit or h.Quit() does, on
// whatever goroutine Run itself runs on. The caller (cmd/greatescape's
// runSimulation) runs it on a goroutine separate from ebiten.RunGame,
// matching gintendo.go, which runs console.Bus.Run on its own goroutine
// concurrently with ebiten.RunGame on the main one: the
// simulation core's blocking Sleep calls would otherwise starve ebiten's
// own event pump if run inside Update.
func (h *Host) Run(tick func() bool) {
	for !h.Quit() {
		if tick() {
			return
		}
	}
}

// App is the ebiten.Game adapter around a Host. It is a separate type
// from Host because ebiten.Game's Draw(*ebiten.Image) and
// machine.Machine's Draw(*machine.Rect) share a method name but not a
// signature; Host implements the latter, App the former, the same
// separation Bus doesn't need because its CPU/PPU bus interface has no
// competing Draw signature.
type App struct {
	*Host
}

// NewApp wraps h for use with ebiten.RunGame. Update is a no-op: all
// simulation work happens on the goroutine started by Host.Run, the same
// division console.Bus.Update documents ("We do work in a different
// goroutine and don't need ebiten to drive this").
func NewApp(h *Host) *App { return &App{Host: h} }

func (a *App) Update() error { return nil }

// Draw implements ebiten.Game: it blits the core's 1bpp framebuffer to
// the window, painting set pixels with the current attribute cell's ink
// and clear pixels with its paper colour (the searchlight overlay writes
// its disc through the same Attributes plane, spec.md §4.11), then fills
// a thin border strip with white whenever the speaker is latched on,
// standing in for the 48K's audible click with a visible one (no audio
// output is in scope, spec.md §1 Non-goals).
func (a *App) Draw(screen *ebiten.Image) {
	for y := 0; y < 192; y++ {
		for x := 0; x < 256; x++ {
			cell := (y/8)*32 + (x / 8)
			attr := a.screen.Attributes[cell]
			ink := palette[attr&0x07]
			paper := palette[(attr>>3)&0x07]
			c := paper
			if machine.GetPixel(&a.screen, x, y) {
				c = ink
			}
			screen.Set(x, y, c)
		}
	}

	if a.speakerOn {
		border := color.RGBA{255, 255, 255, 255}
		const thickness = 4
		for x := 0; x < 256; x++ {
			for t := 0; t < thickness; t++ {
				screen.Set(x, t, border)
				screen.Set(x, 191-t, border)
			}
		}
		for y := 0; y < 192; y++ {
			for t := 0; t < thickness; t++ {
				screen.Set(t, y, border)
				screen.Set(255-t, y, border)
			}
		}
	}
}

// Layout implements ebiten.Game with the fixed 256x192 framebuffer
// (spec.md §1 Non-goals: "variable screen resolution").
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256, 192
}
