package scene

import "github.com/go-drift/press/cmd/pressdemo/internal/config"

// Scenario is a named built-in scene.
type Scenario struct {
	Name        string
	Description string
	Nodes       []config.NodeConfig
}

// Scenarios returns the built-in scenes, each aimed at a different part
// of the press state machine.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "buttons",
			Description: "Plain buttons that press the moment they are touched",
			Nodes: []config.NodeConfig{
				{
					Name: "toolbar",
					Rect: config.RectConfig{X: 1, Y: 0, W: 58, H: 5},
					Children: []config.NodeConfig{
						{Name: "save", Rect: config.RectConfig{X: 3, Y: 1, W: 12, H: 3}},
						{Name: "undo", Rect: config.RectConfig{X: 17, Y: 1, W: 12, H: 3}},
						{Name: "redo", Rect: config.RectConfig{X: 31, Y: 1, W: 12, H: 3}},
					},
				},
			},
		},
		{
			Name:        "list",
			Description: "Scroll-container rows that defer pressed state past the tap timeout",
			Nodes: []config.NodeConfig{
				{
					Name: "list",
					Rect: config.RectConfig{X: 1, Y: 0, W: 58, H: 14},
					Children: []config.NodeConfig{
						{Name: "row-1", Rect: config.RectConfig{X: 3, Y: 1, W: 54, H: 3}, DeferPress: true},
						{Name: "row-2", Rect: config.RectConfig{X: 3, Y: 5, W: 54, H: 3}, DeferPress: true},
						{Name: "row-3", Rect: config.RectConfig{X: 3, Y: 9, W: 54, H: 3}, DeferPress: true},
					},
				},
			},
		},
		{
			Name:        "vetoed",
			Description: "An excluded element that silences the whole search when touched",
			Nodes: []config.NodeConfig{
				{
					Name: "panel",
					Rect: config.RectConfig{X: 1, Y: 0, W: 58, H: 9},
					Children: []config.NodeConfig{
						{Name: "accept", Rect: config.RectConfig{X: 3, Y: 1, W: 16, H: 3}},
						{Name: "locked", Rect: config.RectConfig{X: 21, Y: 1, W: 16, H: 3}, Excluded: true},
						{Name: "ghost", Rect: config.RectConfig{X: 3, Y: 5, W: 16, H: 3}, Invisible: true},
					},
				},
			},
		},
		{
			Name:        "mixed",
			Description: "Toolbar, deferred rows, an excluded node and a hidden one",
			Nodes: []config.NodeConfig{
				{
					Name: "toolbar",
					Rect: config.RectConfig{X: 1, Y: 0, W: 58, H: 5},
					Children: []config.NodeConfig{
						{Name: "save", Rect: config.RectConfig{X: 3, Y: 1, W: 12, H: 3}},
						{Name: "undo", Rect: config.RectConfig{X: 17, Y: 1, W: 12, H: 3}},
						{Name: "locked", Rect: config.RectConfig{X: 31, Y: 1, W: 12, H: 3}, Excluded: true},
					},
				},
				{
					Name: "list",
					Rect: config.RectConfig{X: 1, Y: 6, W: 58, H: 12},
					Children: []config.NodeConfig{
						{Name: "row-1", Rect: config.RectConfig{X: 3, Y: 7, W: 54, H: 3}, DeferPress: true},
						{Name: "row-2", Rect: config.RectConfig{X: 3, Y: 11, W: 54, H: 3}, DeferPress: true},
						{Name: "hidden-row", Rect: config.RectConfig{X: 3, Y: 15, W: 54, H: 3}, Invisible: true},
					},
				},
			},
		},
	}
}

// FindScenario looks up a built-in scenario by name.
func FindScenario(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
