package views

import (
	"strings"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

var nodePositions = []models.MapPosition{
	{X: 20, Y: 20},
	{X: 70, Y: 15},
	{X: 15, Y: 50},
	{X: 75, Y: 55},
	{X: 25, Y: 80},
	{X: 65, Y: 85},
}

type EcosystemNode struct {
	models.AIModule
	ShortName   string
	Icon        string
	Color       string
	StatusStyle Style
	StatusName  string
	Position    models.MapPosition
	Selected    bool
	ToggleURL   string
	SelectURL   string
}

type Connection struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

type EcosystemPage struct {
	Active       int
	Implementing int
	Total        int
	Nodes        []EcosystemNode
	Connections  []Connection
	Selected     *EcosystemNode
}

func nodePosition(i int) models.MapPosition {
	if i < len(nodePositions) {
		return nodePositions[i]
	}
	return models.MapPosition{X: 50, Y: 50}
}

func moduleIcon(id string) string {
	if icon, ok := moduleIcons[id]; ok {
		return icon
	}
	return "brain"
}

// shortName keeps the first two words of a module name for the map label.
func shortName(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// Ecosystem builds the AI module map. The module query selects a node;
// clicking a selected node on the map deselects it.
func Ecosystem(p contracts.Provider, q Query) any {
	page := &EcosystemPage{}
	selected := q.Get("module", "")
	modules := p.AIModules()
	for i, m := range modules {
		color, ok := moduleNodeColors[m.Status]
		if !ok {
			color = "#9ca3af"
		}
		node := EcosystemNode{
			AIModule:    m,
			ShortName:   shortName(m.Name),
			Icon:        moduleIcon(m.ID),
			Color:       color,
			StatusStyle: moduleStatusStyles.of(m.Status),
			StatusName:  Capitalize(m.Status),
			Position:    nodePosition(i),
			Selected:    m.ID == selected,
			ToggleURL:   q.Toggle("module", m.ID).Href(),
			SelectURL:   q.With("module", m.ID).Href(),
		}
		switch m.Status {
		case "active":
			page.Active++
		case "implementing":
			page.Implementing++
		}
		page.Nodes = append(page.Nodes, node)
		if i > 0 {
			from := nodePosition(i - 1)
			page.Connections = append(page.Connections, Connection{X1: from.X, Y1: from.Y, X2: node.Position.X, Y2: node.Position.Y})
		}
	}
	page.Total = len(modules)
	for i := range page.Nodes {
		if page.Nodes[i].Selected {
			n := page.Nodes[i]
			page.Selected = &n
			break
		}
	}
	return page
}
