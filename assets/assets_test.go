package assets

import "testing"

func TestRouteBytesPanicsOnUnknownIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RouteBytes() expected panic for unknown index")
		}
	}()
	RouteBytes(99)
}

func TestDoorPeerIndex(t *testing.T) {
	for i := 0; i < len(DoorTable); i += 2 {
		if got := PeerIndex(i); got != i+1 {
			t.Errorf("PeerIndex(%d) = %d, want %d", i, got, i+1)
		}
		if got := PeerIndex(i + 1); got != i {
			t.Errorf("PeerIndex(%d) = %d, want %d", i+1, got, i)
		}
	}
}

func TestEscapeEvaluateWinningCombos(t *testing.T) {
	cases := []struct {
		mask EscapeMask
		want EscapeVerdict
	}{
		{EscapeHasCompass | EscapeHasPapers, EscapeWon},
		{EscapeHasCompass | EscapeHasPurse, EscapeWon},
		{EscapeHasCompass | EscapeHasPurse | EscapeHasUniform, EscapeShot},
		{EscapeHasUniform, EscapeShot},
		{0, EscapeUnprepared},
		{EscapeHasPurse, EscapeLost},
	}
	for _, c := range cases {
		if got := c.mask.Evaluate(); got != c.want {
			t.Errorf("EscapeMask(%08b).Evaluate() = %v, want %v", c.mask, got, c.want)
		}
	}
}

func TestCharacterDefaultsHeroIsSlotZero(t *testing.T) {
	if CharacterDefaults[Hero].ID != Hero {
		t.Errorf("CharacterDefaults[Hero].ID = %v, want Hero", CharacterDefaults[Hero].ID)
	}
}

func TestClassOfHostility(t *testing.T) {
	if !IsHostile(ClassOf(Dog1)) {
		t.Errorf("ClassOf(Dog1) should be hostile")
	}
	if IsHostile(ClassOf(PrisonerFirst)) {
		t.Errorf("ClassOf(PrisonerFirst) should not be hostile")
	}
}

func TestDefaultPackRoundTrips(t *testing.T) {
	p := Default()
	if p.Room(2) == nil {
		t.Errorf("Default().Room(2) = nil")
	}
	if got := p.Route(1); len(got) == 0 {
		t.Errorf("Default().Route(1) returned empty route")
	}
}
