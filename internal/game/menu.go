package game

// MenuScreen is the page of the start menu being shown.
type MenuScreen uint8

const (
	MenuStarSelection MenuScreen = iota
	MenuPlanetCount
)

// MenuKeys is the menu input for one tick. All fields are edge-triggered.
type MenuKeys struct {
	Up, Down bool
	Confirm  bool // Enter or Space
	Back     bool // Escape
}

// MenuSelection is what the player picked before starting a session.
type MenuSelection struct {
	StarType    StarType
	PlanetCount int
}

// DefaultPlanetCount is preselected when the planet count screen opens.
const DefaultPlanetCount = 6

// Menu walks the player through choosing a star and a planet count.
type Menu struct {
	Screen       MenuScreen
	Selected     int
	StarTypes    []StarType
	PlanetCounts []int

	chosenStar StarType
}

// NewMenu creates a menu on the star selection screen.
func NewMenu(planetCounts []int) *Menu {
	return &Menu{
		Screen:       MenuStarSelection,
		StarTypes:    AllStarTypes(),
		PlanetCounts: planetCounts,
	}
}

// ChosenStar returns the star picked on the first screen.
func (m *Menu) ChosenStar() StarType { return m.chosenStar }

// Options returns the number of entries on the current screen.
func (m *Menu) Options() int {
	if m.Screen == MenuStarSelection {
		return len(m.StarTypes)
	}
	return len(m.PlanetCounts)
}

// HandleInput applies one tick of menu keys. It returns a selection once the
// player confirms a planet count.
func (m *Menu) HandleInput(k MenuKeys) (MenuSelection, bool) {
	if k.Up && m.Selected > 0 {
		m.Selected--
	}
	if k.Down && m.Selected < m.Options()-1 {
		m.Selected++
	}

	switch m.Screen {
	case MenuStarSelection:
		if k.Confirm && len(m.StarTypes) > 0 {
			m.chosenStar = m.StarTypes[m.Selected]
			m.Screen = MenuPlanetCount
			m.Selected = m.defaultCountIndex()
		}
	case MenuPlanetCount:
		if k.Confirm && len(m.PlanetCounts) > 0 {
			return MenuSelection{
				StarType:    m.chosenStar,
				PlanetCount: m.PlanetCounts[m.Selected],
			}, true
		}
		if k.Back {
			m.Screen = MenuStarSelection
			m.Selected = 0
		}
	}
	return MenuSelection{}, false
}

func (m *Menu) defaultCountIndex() int {
	for i, n := range m.PlanetCounts {
		if n == DefaultPlanetCount {
			return i
		}
	}
	return 0
}
