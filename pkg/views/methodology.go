package views

import (
	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

const maxPhaseRisks = 2

type PhaseItem struct {
	models.MethodologyPhase
	Status   Style
	TopRisks []models.Risk
	Selected bool
	URL      string
}

type TechnologyItem struct {
	models.Technology
	Status Style
}

type TechnologyGroup struct {
	Category     string
	Technologies []TechnologyItem
}

type IntegrationRow struct {
	models.IntegrationPoint
	Status     Style
	Complexity Style
	Note       string
}

type MethodologyPage struct {
	Tab          string
	Tabs         []Choice
	Phases       []PhaseItem
	Timeline     []models.TimelineEntry
	Technology   []TechnologyGroup
	Integrations []IntegrationRow
	Guides       []models.ImplementationGuide
}

func integrationNote(p models.IntegrationPoint) string {
	switch {
	case p.Complexity == "High":
		return "Requiere especialista"
	case p.Status == "active":
		return "Ya implementado"
	default:
		return "Pendiente desarrollo"
	}
}

// Methodology builds the project methodology viewer. tab picks the panel,
// phase expands a phase card.
func Methodology(p contracts.Provider, q Query) any {
	m := p.Methodology()
	page := &MethodologyPage{
		Timeline: m.Timeline,
		Guides:   m.Guides,
	}
	page.Tab, page.Tabs = choose(q, "tab", m.Tabs, "phases")

	selected := q.Get("phase", "")
	for _, ph := range p.MethodologyPhases() {
		risks := ph.Risks
		if len(risks) > maxPhaseRisks {
			risks = risks[:maxPhaseRisks]
		}
		page.Phases = append(page.Phases, PhaseItem{
			MethodologyPhase: ph,
			Status:           phaseStatusStyles.of(ph.Status),
			TopRisks:         risks,
			Selected:         ph.ID == selected,
			URL:              q.Toggle("phase", ph.ID).Href(),
		})
	}
	for _, group := range p.TechnologyStack() {
		g := TechnologyGroup{Category: group.Category}
		for _, t := range group.Technologies {
			g.Technologies = append(g.Technologies, TechnologyItem{Technology: t, Status: techStatusStyles.of(t.Status)})
		}
		page.Technology = append(page.Technology, g)
	}
	for _, ip := range m.Integrations {
		page.Integrations = append(page.Integrations, IntegrationRow{
			IntegrationPoint: ip,
			Status:           integrationPointStyles.of(ip.Status),
			Complexity:       complexityStyles.of(ip.Complexity),
			Note:             integrationNote(ip),
		})
	}
	return page
}
