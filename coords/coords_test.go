package coords

import "testing"

func TestScaleRoundTrip(t *testing.T) {
	for _, p := range []Pos8{
		{U: 0, V: 0, W: 0},
		{U: 10, V: 20, W: 3},
		{U: 31, V: 31, W: 7},
	} {
		if got := ScaleDown(ScaleUp(p)); got != p {
			t.Errorf("ScaleDown(ScaleUp(%v)) = %v, want %v", p, got, p)
		}
	}
}

func TestNarrowWidenRoundTrip(t *testing.T) {
	p := Pos8{U: 12, V: 34, W: 5}
	if got := p.ToPos16().Narrow(); got != p {
		t.Errorf("Narrow(ToPos16(%v)) = %v, want %v", p, got, p)
	}
}

func TestAddDelta(t *testing.T) {
	p := Pos16{U: 100, V: 100, W: 10}
	got := p.Add(-1, 1, 0)
	want := Pos16{U: 99, V: 101, W: 10}
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestProjectMatchesFormula(t *testing.T) {
	p := Pos16{U: 10, V: 20, W: 5}
	iso := Project(p)
	wantX := int16((0x200 - 10 + 20) * 2)
	wantY := int16(0x800 - 10 - 20 - 5)
	if iso.X != wantX || iso.Y != wantY {
		t.Errorf("Project(%+v) = %+v, want {%d %d}", p, iso, wantX, wantY)
	}
}
