package machine

// Input values as consumed by the behaviour and animation engines. The
// encoding is additive, not bitwise: left/right contribute 3 or 6 and
// up/down 1 or 2, so the nine movement states land on 0..8 — exactly the
// column index into the (direction, input) animation lookup (spec.md
// §4.5). Fire adds 9 on top and is stripped before animation lookup; the
// kick flag forces animation re-selection and is not a physical key.
const (
	InputNone      = 0
	InputUp        = 1
	InputDown      = 2
	InputLeft      = 3
	InputLeftUp    = 4
	InputLeftDown  = 5
	InputRight     = 6
	InputRightUp   = 7
	InputRightDown = 8
	InputFire      = 9

	InputKick = 0x80
)

// MovementOnly strips the fire contribution and the kick flag, leaving
// the 0..8 movement state.
func MovementOnly(input uint8) uint8 {
	input &^= InputKick
	if input >= InputFire {
		input -= InputFire
	}
	return input
}

// FirePressed reports whether input carries the fire contribution.
func FirePressed(input uint8) bool {
	return input&^InputKick >= InputFire
}

// InputRoutine reads the host's current control state and returns the
// packed input value above. The original exposes four selectable
// routines; exactly one is active per game, matching original_source's
// inputroutine function-pointer table (Input.c).
type InputRoutine func(m Machine) uint8

// KeyMap is a user-configurable row/mask pair per direction, read via
// Machine.In. This is the "keyboard-mapping configuration" spec.md places
// above the core (§1); the core only needs the resulting five pairs.
type KeyMap struct {
	Left, Right, Up, Down, Fire PortMask
}

// PortMask names one keyboard half-row and the bit within it.
type PortMask struct {
	Port uint16
	Bit  uint8
}

func (pm PortMask) pressed(m Machine) bool {
	return m.In(pm.Port)&(1<<pm.Bit) == 0 // active-low
}

// DefaultKeyMap matches the original's QAOP-space-ish default row.
var DefaultKeyMap = KeyMap{
	Left:  PortMask{Port: 0xFDFE, Bit: 0}, // 'A'
	Right: PortMask{Port: 0xDFFE, Bit: 1}, // 'O'
	Up:    PortMask{Port: 0xFBFE, Bit: 0}, // 'Q'
	Down:  PortMask{Port: 0xDFFE, Bit: 0}, // 'P'
	Fire:  PortMask{Port: 0x7FFE, Bit: 0}, // SPACE
}

// Keyboard builds an InputRoutine reading the five configured keys,
// summing a left/right contribution, an up/down contribution, and fire,
// the way Input.c's keyboard routine builds its result.
func Keyboard(km KeyMap) InputRoutine {
	return func(m Machine) uint8 {
		var leftRight, upDown, fire uint8
		if km.Left.pressed(m) {
			leftRight = InputLeft
		} else if km.Right.pressed(m) {
			leftRight = InputRight
		}
		if km.Up.pressed(m) {
			upDown = InputUp
		} else if km.Down.pressed(m) {
			upDown = InputDown
		}
		if km.Fire.pressed(m) {
			fire = InputFire
		}
		return leftRight + upDown + fire
	}
}

// Protek reads the fixed number-row/zero-key cursor mapping.
func Protek(m Machine) uint8 {
	km := KeyMap{
		Left:  PortMask{Port: 0xF7FE, Bit: 4}, // '5'
		Right: PortMask{Port: 0xEFFE, Bit: 2}, // '8'
		Up:    PortMask{Port: 0xEFFE, Bit: 3}, // '7'
		Down:  PortMask{Port: 0xEFFE, Bit: 4}, // '6'
		Fire:  PortMask{Port: 0xEFFE, Bit: 0}, // '0'
	}
	return Keyboard(km)(m)
}

// Kempston reads port 0x001F, bits 000FUDLR active-high.
func Kempston(m Machine) uint8 {
	v := m.In(PortKempston)
	var leftRight, upDown, fire uint8
	if v&0x02 != 0 {
		leftRight = InputLeft
	} else if v&0x01 != 0 {
		leftRight = InputRight
	}
	if v&0x08 != 0 {
		upDown = InputUp
	} else if v&0x04 != 0 {
		upDown = InputDown
	}
	if v&0x10 != 0 {
		fire = InputFire
	}
	return leftRight + upDown + fire
}

// Sinclair reads the fixed 67890 mapping.
func Sinclair(m Machine) uint8 {
	km := KeyMap{
		Left:  PortMask{Port: 0xEFFE, Bit: 4}, // '6'
		Right: PortMask{Port: 0xEFFE, Bit: 3}, // '7'
		Up:    PortMask{Port: 0xEFFE, Bit: 1}, // '9'
		Down:  PortMask{Port: 0xEFFE, Bit: 2}, // '8'
		Fire:  PortMask{Port: 0xEFFE, Bit: 0}, // '0'
	}
	return Keyboard(km)(m)
}
