package views

import (
	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

const defaultLevel = "balanced"

type MapMarker struct {
	ID    string
	Name  string
	Color string
	Type  Style
	X     float64
	Y     float64
}

type RouteLine struct {
	ID        string
	X1        float64
	Y1        float64
	X2        float64
	Y2        float64
	Stroke    string
	Dashed    bool
	ScoreX    float64
	ScoreY    float64
	ScoreFill string
	Score     int
	URL       string
}

type RouteItem struct {
	models.Route
	Path     string
	Status   Style
	Selected bool
	URL      string
}

type IntegrationItem struct {
	Name   string
	Status Style
}

type RecommendationItem struct {
	models.Recommendation
	Class string
}

type RoutesPage struct {
	Metrics         models.OptimizationMetrics
	CostsAvoided    string
	Markers         []MapMarker
	Lines           []RouteLine
	Legend          []Style
	Routes          []RouteItem
	Selected        *RouteItem
	Level           string
	Levels          []Choice
	Integrations    []IntegrationItem
	Recommendations []RecommendationItem
}

func position(positions map[string]models.MapPosition, id string) models.MapPosition {
	if pos, ok := positions[id]; ok {
		return pos
	}
	return models.MapPosition{X: 50, Y: 50}
}

// Routes builds the route optimisation view. route selects a route in the
// list, level picks the optimisation preference.
func Routes(p contracts.Provider, q Query) any {
	opt := p.RouteOptimization()
	page := &RoutesPage{
		Metrics:      opt.Metrics,
		CostsAvoided: "$" + Number(opt.Metrics.CostsAvoided),
	}
	page.Level, page.Levels = choose(q, "level", opt.OptimizationLevels, defaultLevel)

	for _, loc := range p.Locations() {
		pos := position(opt.LocationPositions, loc.ID)
		style := locationTypeStyles.of(loc.Type)
		page.Markers = append(page.Markers, MapMarker{
			ID:    loc.ID,
			Name:  loc.Name,
			Color: style.Class,
			Type:  style,
			X:     pos.X,
			Y:     pos.Y,
		})
	}
	for _, t := range []string{"headquarters", "port", "border", "warehouse"} {
		page.Legend = append(page.Legend, locationTypeStyles.of(t))
	}

	selected := q.Get("route", "")
	for _, r := range p.ActiveRoutes() {
		from := position(opt.LocationPositions, r.Origin.ID)
		to := position(opt.LocationPositions, r.Destination.ID)
		line := RouteLine{
			ID:        r.ID,
			X1:        from.X,
			Y1:        from.Y,
			X2:        to.X,
			Y2:        to.Y,
			Stroke:    "#6b7280",
			Dashed:    r.Status == "planned",
			ScoreX:    (from.X + to.X) / 2,
			ScoreY:    (from.Y + to.Y) / 2,
			ScoreFill: "#f59e0b",
			Score:     r.OptimizationScore,
			URL:       q.With("route", r.ID).Href(),
		}
		if r.Status == "active" {
			line.Stroke = "#10b981"
		}
		if r.OptimizationScore > 90 {
			line.ScoreFill = "#10b981"
		}
		page.Lines = append(page.Lines, line)

		item := RouteItem{
			Route:    r,
			Path:     routePath(r),
			Status:   routeListStyles.of(r.Status),
			Selected: r.ID == selected,
			URL:      q.With("route", r.ID).Href(),
		}
		page.Routes = append(page.Routes, item)
	}
	for i := range page.Routes {
		if page.Routes[i].Selected {
			r := page.Routes[i]
			page.Selected = &r
			break
		}
	}

	for _, in := range opt.Integrations {
		page.Integrations = append(page.Integrations, IntegrationItem{Name: in.Name, Status: integrationStyles.of(in.Status)})
	}
	for _, rec := range opt.Recommendations {
		page.Recommendations = append(page.Recommendations, RecommendationItem{Recommendation: rec, Class: tone(rec.Tone)})
	}
	return page
}
