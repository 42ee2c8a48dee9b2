package views

import (
	"math"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

type KPICard struct {
	ID         string
	Title      string
	Value      string
	Unit       string
	ValueClass string
	Trend      Style
	TrendLabel string
}

type AlertItem struct {
	ID           string
	Message      string
	Time         string
	Clock        string
	Severity     Style
	Class        string
	Routes       []string
	Acknowledged bool
}

type RouteRow struct {
	ID     string
	Path   string
	Client string
	Status Style
	ETA    string
	Score  int
}

type DashboardPage struct {
	KPIs        []KPICard
	Revenue     LineChart
	Fleet       PieChart
	Performance BarChart
	Alerts      []AlertItem
	Routes      []RouteRow
	InTransit   int
}

func kpiCard(m models.KPIMetric) KPICard {
	card := KPICard{
		ID:         m.ID,
		Title:      m.Title,
		Value:      m.Value,
		Unit:       m.Unit,
		ValueClass: kpiStatusStyles.of(m.Status).Class,
		Trend:      trendStyles.of(string(m.Trend)),
	}
	if m.TrendValue != nil {
		card.TrendLabel = Decimal(*m.TrendValue) + "%"
		if m.Trend == models.TrendUp {
			card.TrendLabel = "+" + card.TrendLabel
		}
	}
	return card
}

func alertItem(a models.OperationalAlert) AlertItem {
	item := AlertItem{
		ID:           a.ID,
		Message:      a.Message,
		Time:         DateTime(a.Timestamp),
		Clock:        Clock(a.Timestamp),
		Severity:     alertSeverityStyles.of(a.Severity),
		Routes:       a.AffectedRoutes,
		Acknowledged: a.Acknowledged,
		Class:        "bg-yellow-50 border-yellow-200",
	}
	if a.Acknowledged {
		item.Class = "bg-gray-50 border-gray-200"
	}
	return item
}

func routePath(r models.Route) string {
	return r.Origin.Name + " → " + r.Destination.Name
}

// Dashboard builds the executive overview.
func Dashboard(p contracts.Provider, _ Query) any {
	page := &DashboardPage{}
	for _, m := range p.KPIMetrics() {
		page.KPIs = append(page.KPIs, kpiCard(m))
	}

	exec := p.Executive()
	months := make([]string, 0, len(exec.Revenue))
	revenue := make([]float64, 0, len(exec.Revenue))
	costs := make([]float64, 0, len(exec.Revenue))
	for _, r := range exec.Revenue {
		months = append(months, r.Month)
		revenue = append(revenue, r.Revenue)
		costs = append(costs, r.Costs)
	}
	page.Revenue = NewLineChart(months, []Series{
		{Name: "Ingresos (M MXN)", Color: "#059669", Values: revenue},
		{Name: "Costos (M MXN)", Color: "#d97706", Values: costs},
	})
	page.Fleet = NewPieChart(exec.FleetUtilization)

	routes := make([]string, 0, len(exec.RoutePerformance))
	onTime := make([]float64, 0, len(exec.RoutePerformance))
	delayed := make([]float64, 0, len(exec.RoutePerformance))
	for _, r := range exec.RoutePerformance {
		routes = append(routes, r.Route)
		onTime = append(onTime, r.OnTime)
		delayed = append(delayed, r.Delayed)
	}
	page.Performance = NewBarChart(routes,
		Series{Name: "A Tiempo (%)", Color: "#059669", Values: onTime},
		Series{Name: "Retrasado (%)", Color: "#d97706", Values: delayed},
	)

	for _, a := range p.OperationalAlerts() {
		page.Alerts = append(page.Alerts, alertItem(a))
	}
	for _, r := range p.ActiveRoutes() {
		client := "N/A"
		if r.Cargo != nil && r.Cargo.Client != "" {
			client = r.Cargo.Client
		}
		if r.Status == "active" {
			page.InTransit++
		}
		page.Routes = append(page.Routes, RouteRow{
			ID:     r.ID,
			Path:   routePath(r),
			Client: client,
			Status: routeStatusStyles.of(r.Status),
			ETA:    Decimal(r.EstimatedTime) + "h",
			Score:  r.OptimizationScore,
		})
	}
	return page
}

// percent clamps v to the 0..100 range used for progress bar widths.
func percent(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}
