package machine

import "testing"

func TestPutGetPixelRoundTrip(t *testing.T) {
	s := &Screen{}

	for _, p := range []struct{ x, y int }{
		{0, 0}, {255, 0}, {0, 191}, {255, 191}, {123, 45},
	} {
		PutPixel(s, p.x, p.y, true)
		if !GetPixel(s, p.x, p.y) {
			t.Errorf("pixel (%d,%d) not set after PutPixel", p.x, p.y)
		}
		PutPixel(s, p.x, p.y, false)
		if GetPixel(s, p.x, p.y) {
			t.Errorf("pixel (%d,%d) still set after clearing", p.x, p.y)
		}
	}
}

func TestPixelOffsetInterleave(t *testing.T) {
	// Top scanline of the second third of the screen (y=64) starts a
	// new 2K band; y=0 and y=64 must not collide.
	if pixelOffset(0, 0) == pixelOffset(0, 64) {
		t.Errorf("pixelOffset(0,0) and pixelOffset(0,64) collide")
	}
}

func TestAttributeByte(t *testing.T) {
	a := Attribute{Flash: true, Bright: true, Paper: 7, Ink: 1}
	if got, want := a.Byte(), uint8(0b11111001); got != want {
		t.Errorf("Byte() = %08b, want %08b", got, want)
	}
}

type fakeMachine struct {
	ports map[uint16]uint8
}

// In returns 0xFF (no key pressed, active-low) for any port not explicitly
// set, the way an unused keyboard row floats high.
func (f *fakeMachine) In(port uint16) uint8 {
	if v, ok := f.ports[port]; ok {
		return v
	}
	return 0xFF
}
func (f *fakeMachine) Out(port uint16, val uint8)  {}
func (f *fakeMachine) Screen() *Screen             { return &Screen{} }
func (f *fakeMachine) Draw(d *Rect)                {}
func (f *fakeMachine) Stamp()                      {}
func (f *fakeMachine) Sleep(t uint32) (quit bool)  { return false }

func TestKempstonActiveHigh(t *testing.T) {
	fm := &fakeMachine{ports: map[uint16]uint8{PortKempston: 0x10}} // fire only
	if in := Kempston(fm); in != InputFire {
		t.Errorf("Kempston() = %d, want InputFire (%d)", in, InputFire)
	}
	fm2 := &fakeMachine{ports: map[uint16]uint8{PortKempston: 0x0A}} // up + left
	if in := Kempston(fm2); in != InputLeftUp {
		t.Errorf("Kempston() = %d, want InputLeftUp (%d)", in, InputLeftUp)
	}
}

func TestKeyboardActiveLow(t *testing.T) {
	km := DefaultKeyMap
	fm := &fakeMachine{ports: map[uint16]uint8{km.Left.Port: 0xFF &^ (1 << km.Left.Bit)}}
	if in := Keyboard(km)(fm); in != InputLeft {
		t.Errorf("Keyboard() = %d, want InputLeft (%d)", in, InputLeft)
	}
	fm2 := &fakeMachine{ports: map[uint16]uint8{km.Left.Port: 0xFF}}
	if in := Keyboard(km)(fm2); in != InputNone {
		t.Errorf("Keyboard() = %d, want InputNone when every key is up", in)
	}
}

func TestMovementOnlyStripsFireAndKick(t *testing.T) {
	cases := []struct{ in, want uint8 }{
		{InputNone, InputNone},
		{InputLeftUp, InputLeftUp},
		{InputLeftUp + InputFire, InputLeftUp},
		{InputRightDown | InputKick, InputRightDown},
		{InputFire, InputNone},
	}
	for _, c := range cases {
		if got := MovementOnly(c.in); got != c.want {
			t.Errorf("MovementOnly(%d) = %d, want %d", c.in, got, c.want)
		}
	}
	if !FirePressed(InputLeft + InputFire) {
		t.Errorf("FirePressed should report the fire contribution on a diagonal")
	}
	if FirePressed(InputRightDown) {
		t.Errorf("FirePressed should be false for a bare movement state")
	}
}
