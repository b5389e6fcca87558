package game

import "testing"

func TestMenuFlow(t *testing.T) {
	m := NewMenu(DefaultSettings().PlanetCounts)
	if m.Screen != MenuStarSelection || m.Selected != 0 {
		t.Fatalf("unexpected initial menu: %+v", m)
	}

	m.HandleInput(MenuKeys{Down: true})
	m.HandleInput(MenuKeys{Down: true})
	if _, ok := m.HandleInput(MenuKeys{Confirm: true}); ok {
		t.Fatalf("star confirmation should not start a session")
	}
	if m.Screen != MenuPlanetCount || m.ChosenStar() != StarBlueGiant {
		t.Fatalf("expected planet count screen for Blue Giant, got %v %s", m.Screen, m.ChosenStar().Name())
	}
	if m.PlanetCounts[m.Selected] != DefaultPlanetCount {
		t.Fatalf("expected %d preselected, got %d", DefaultPlanetCount, m.PlanetCounts[m.Selected])
	}

	m.HandleInput(MenuKeys{Up: true})
	sel, ok := m.HandleInput(MenuKeys{Confirm: true})
	if !ok {
		t.Fatalf("expected a selection")
	}
	if sel != (MenuSelection{StarType: StarBlueGiant, PlanetCount: 5}) {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestMenuSelectionClamps(t *testing.T) {
	m := NewMenu([]int{2, 3})
	m.HandleInput(MenuKeys{Up: true})
	if m.Selected != 0 {
		t.Fatalf("expected clamp at 0, got %d", m.Selected)
	}
	for i := 0; i < 10; i++ {
		m.HandleInput(MenuKeys{Down: true})
	}
	if m.Selected != len(m.StarTypes)-1 {
		t.Fatalf("expected clamp at %d, got %d", len(m.StarTypes)-1, m.Selected)
	}

	m.HandleInput(MenuKeys{Confirm: true})
	if m.Selected != 0 {
		t.Fatalf("expected first count when default is missing, got %d", m.Selected)
	}
	for i := 0; i < 10; i++ {
		m.HandleInput(MenuKeys{Down: true})
	}
	if m.Selected != 1 {
		t.Fatalf("expected clamp at 1, got %d", m.Selected)
	}
}

func TestMenuBack(t *testing.T) {
	m := NewMenu(DefaultSettings().PlanetCounts)
	m.HandleInput(MenuKeys{Down: true})
	m.HandleInput(MenuKeys{Confirm: true})
	m.HandleInput(MenuKeys{Back: true})
	if m.Screen != MenuStarSelection || m.Selected != 0 {
		t.Fatalf("expected star screen with first entry selected, got %v %d", m.Screen, m.Selected)
	}

	// Back on the first screen does nothing
	m.HandleInput(MenuKeys{Back: true})
	if m.Screen != MenuStarSelection {
		t.Fatalf("back on star screen changed screen to %v", m.Screen)
	}
}
