// Package debugmon is an interactive REPL over a running *game.State,
// reachable from cmd/greatescape's -debug flag. Grounded on
// console.machine.BIOS (_examples/bdwalton-gintendo/console/machine.go):
// the same menu-driven loop over stdin, printing with fmt and dispatching
// on a single rune, scaled from "6502 registers/breakpoints" to "vischar
// table/tick count/messages".
package debugmon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/game"
	"github.com/dpt-reimpl/greatescape/machine"
)

// Monitor drives the REPL. It owns no state of its own beyond the
// breakpoint set: everything it prints or mutates belongs to the State
// and Machine it's given at Run time, same as console.machine.BIOS holds
// no state beyond its own breakpoint map.
type Monitor struct {
	breaks map[uint64]struct{}

	in  *bufio.Scanner
	out io.Writer
}

// New returns a Monitor reading commands from in and printing to out.
func New(in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		breaks: make(map[uint64]struct{}),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run prints the menu and dispatches one command per input line until
// the user quits or in is exhausted. It calls game.Main to step the
// simulation, so it must run on the same goroutine the simulation loop
// would otherwise occupy (cmd/greatescape runs it in place of
// runSimulation when -debug is given, rather than alongside it).
func (m *Monitor) Run(s *game.State, mach machine.Machine) {
	for {
		fmt.Fprintf(m.out, "\ntick=%d room=%d morale=%d score=%d\n", TickCount(s), s.CurrentRoom, s.Morale, s.Score)
		fmt.Fprintln(m.out, "(B)reak <tick> - add a tick breakpoint")
		fmt.Fprintln(m.out, "(C)lear - clear breakpoints")
		fmt.Fprintln(m.out, "(R)un - run to completion or next breakpoint")
		fmt.Fprintln(m.out, "(S)tep - step one tick")
		fmt.Fprintln(m.out, "R(e)set - reset the game")
		fmt.Fprintln(m.out, "(V)ischars - dump the vischar table")
		fmt.Fprintln(m.out, "(I)tems - dump the item table")
		fmt.Fprintln(m.out, "(M)essages - dump the pending message queue")
		fmt.Fprintln(m.out, "(Q)uit - stop the monitor")
		fmt.Fprint(m.out, "Choice: ")

		if !m.in.Scan() {
			return
		}
		line := strings.TrimSpace(m.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])

		switch cmd[0] {
		case 'b':
			if len(fields) < 2 {
				fmt.Fprintln(m.out, "usage: b <tick>")
				continue
			}
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Fprintf(m.out, "bad tick: %v\n", err)
				continue
			}
			m.breaks[n] = struct{}{}
		case 'c':
			m.breaks = make(map[uint64]struct{})
		case 'q':
			return
		case 'r':
			for {
				if game.Main(s, mach) {
					return
				}
				if _, hit := m.breaks[TickCount(s)]; hit {
					break
				}
			}
		case 's':
			if game.Main(s, mach) {
				fmt.Fprintln(m.out, "simulation requested quit")
				return
			}
		case 'e':
			game.Reset(s)
		case 'v':
			m.dumpVischars(s)
		case 'i':
			m.dumpItems(s)
		case 'm':
			m.dumpMessages(s)
		default:
			fmt.Fprintf(m.out, "unknown command %q\n", cmd)
		}
	}
}

func (m *Monitor) dumpVischars(s *game.State) {
	for i, vc := range s.VC.Slots {
		if vc.Empty {
			fmt.Fprintf(m.out, "slot %d: empty\n", i)
			continue
		}
		fmt.Fprintf(m.out, "slot %d: char=%d class=%d room=%d pos=%+v flags=%#02x route=%+v\n",
			i, vc.Character, assets.ClassOf(vc.Character), vc.Room, vc.MI.Pos, vc.Flags, vc.Route)
	}
}

func (m *Monitor) dumpItems(s *game.State) {
	for i, it := range s.Items.Items {
		fmt.Fprintf(m.out, "item %2d: id=%d room=%d held=%v pos=%+v\n", i, it.ID, it.Room, it.Held, it.Pos)
	}
}

func (m *Monitor) dumpMessages(s *game.State) {
	text := s.Messages.PendingText()
	if text == "" {
		fmt.Fprintln(m.out, "(no pending messages)")
		return
	}
	fmt.Fprintf(m.out, "  %q\n", text)
}

// TickCount exposes game.State's tick counter to the monitor via its
// exported Ticks accessor (debugmon never reaches into game's
// unexported fields directly).
func TickCount(s *game.State) uint64 { return s.Ticks() }
