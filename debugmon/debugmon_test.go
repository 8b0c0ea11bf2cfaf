package debugmon

import (
	"strings"
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/game"
	"github.com/dpt-reimpl/greatescape/machine"
)

type fakeMachine struct {
	screen machine.Screen
}

func (f *fakeMachine) In(port uint16) uint8       { return 0xFF }
func (f *fakeMachine) Out(port uint16, val uint8) {}
func (f *fakeMachine) Screen() *machine.Screen    { return &f.screen }
func (f *fakeMachine) Draw(d *machine.Rect)       {}
func (f *fakeMachine) Stamp()                     {}
func (f *fakeMachine) Sleep(t uint32) bool        { return false }

func newTestState() *game.State {
	s := game.NewState(assets.Default())
	game.Reset(s)
	return s
}

func TestStepAdvancesTickCount(t *testing.T) {
	s := newTestState()
	m := &fakeMachine{}

	in := strings.NewReader("s\ns\nq\n")
	out := &strings.Builder{}
	New(in, out).Run(s, m)

	if got := s.Ticks(); got != 2 {
		t.Errorf("Ticks() = %d, want 2 after two step commands", got)
	}
}

func TestBreakpointStopsRun(t *testing.T) {
	s := newTestState()
	m := &fakeMachine{}

	in := strings.NewReader("b 3\nr\nq\n")
	out := &strings.Builder{}
	New(in, out).Run(s, m)

	if got := s.Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, want 3 (run should stop at the breakpoint)", got)
	}
}

func TestResetCommandRestoresMorale(t *testing.T) {
	s := newTestState()
	m := &fakeMachine{}
	s.Morale = 0

	in := strings.NewReader("e\nq\n")
	out := &strings.Builder{}
	New(in, out).Run(s, m)

	if s.Morale != game.MoraleMax {
		t.Errorf("Morale = %d after 'e', want %d", s.Morale, game.MoraleMax)
	}
}

func TestDumpCommandsDoNotPanic(t *testing.T) {
	s := newTestState()
	m := &fakeMachine{}

	in := strings.NewReader("v\ni\nm\nq\n")
	out := &strings.Builder{}
	New(in, out).Run(s, m)

	if out.Len() == 0 {
		t.Errorf("monitor produced no output")
	}
}

func TestUnknownCommandDoesNotHang(t *testing.T) {
	s := newTestState()
	m := &fakeMachine{}

	in := strings.NewReader("zzz\nq\n")
	out := &strings.Builder{}
	New(in, out).Run(s, m)

	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("expected an 'unknown command' notice in output")
	}
}
