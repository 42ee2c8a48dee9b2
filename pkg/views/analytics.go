package views

import (
	"math"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

type StatItem struct {
	Value string
	Label string
	Class string
}

type CapacityRow struct {
	Resource    string
	Current     string
	Recommended string
	Utilization string
	Width       float64
	Action      CapacityAction
}

type MarketItem struct {
	models.MarketTrend
	TrendStyle  Style
	ImpactStyle Style
}

type RiskItem struct {
	models.RiskFactor
	ProbabilityClass string
	ImpactClass      string
}

type AccuracyItem struct {
	Name      string
	Value     string
	Width     float64
	TextClass string
	BarClass  string
}

type AnalyticsPage struct {
	Analysis        string
	Analyses        []Choice
	Timeframe       string
	Timeframes      []Choice
	QuickStats      []StatItem
	Demand          LineChart
	DemandInsight   string
	Seasonal        BarChart
	SeasonalInsight string
	Capacity        []CapacityRow
	Market          []MarketItem
	Risks           []RiskItem
	Accuracy        []AccuracyItem
}

// Analytics builds the predictive analytics view. Months without a
// historical figure leave a gap in the historical line.
func Analytics(p contracts.Provider, q Query) any {
	a := p.Analytics()
	page := &AnalyticsPage{
		DemandInsight:   a.DemandInsight,
		SeasonalInsight: a.SeasonalInsight,
	}
	page.Analysis, page.Analyses = choose(q, "analysis", a.AnalysisTypes, "demand")
	page.Timeframe, page.Timeframes = choose(q, "timeframe", a.Timeframes, "3months")

	for _, s := range a.QuickStats {
		text, _ := accent(s.Tone)
		page.QuickStats = append(page.QuickStats, StatItem{Value: s.Value, Label: s.Label, Class: text})
	}

	months := make([]string, 0, len(a.Demand))
	historical := make([]float64, 0, len(a.Demand))
	predicted := make([]float64, 0, len(a.Demand))
	upper := make([]float64, 0, len(a.Demand))
	lower := make([]float64, 0, len(a.Demand))
	for _, d := range a.Demand {
		months = append(months, d.Month)
		if d.Historical != nil {
			historical = append(historical, *d.Historical)
		} else {
			historical = append(historical, math.NaN())
		}
		predicted = append(predicted, d.Predicted)
		upper = append(upper, d.UpperBound)
		lower = append(lower, d.LowerBound)
	}
	page.Demand = NewLineChart(months,
		[]Series{
			{Name: "Histórico", Color: "#6b7280", Values: historical},
			{Name: "Predicción", Color: "#8b5cf6", Dashed: true, Values: predicted},
		},
		BandSeries{Name: "Banda de Confianza", Color: "#e5e7eb", Upper: upper, Lower: lower},
	)

	clients := make([]string, 0, len(a.Seasonal))
	var q1, q2, q3, q4 []float64
	for _, s := range a.Seasonal {
		clients = append(clients, s.Client)
		q1 = append(q1, s.Q1)
		q2 = append(q2, s.Q2)
		q3 = append(q3, s.Q3)
		q4 = append(q4, s.Q4)
	}
	page.Seasonal = NewBarChart(clients,
		Series{Name: "Q1", Color: "#3b82f6", Values: q1},
		Series{Name: "Q2", Color: "#10b981", Values: q2},
		Series{Name: "Q3", Color: "#f59e0b", Values: q3},
		Series{Name: "Q4", Color: "#ef4444", Values: q4},
	)

	for _, c := range a.Capacity {
		page.Capacity = append(page.Capacity, CapacityRow{
			Resource:    c.Resource,
			Current:     Number(c.Current),
			Recommended: Number(c.Recommended),
			Utilization: Decimal(c.Utilization) + "%",
			Width:       percent(c.Utilization),
			Action:      capacityAction(c.Utilization),
		})
	}
	for _, m := range a.Market {
		page.Market = append(page.Market, MarketItem{
			MarketTrend: m,
			TrendStyle:  trendStyles.of(m.Trend),
			ImpactStyle: impactStyles.of(m.Impact),
		})
	}
	for _, r := range a.Risks {
		page.Risks = append(page.Risks, RiskItem{
			RiskFactor:       r,
			ProbabilityClass: levelBadgeStyles.of(r.Probability).Class,
			ImpactClass:      levelBadgeStyles.of(r.Impact).Class,
		})
	}
	for _, s := range a.ModelAccuracy {
		text, bar := accent(s.Color)
		page.Accuracy = append(page.Accuracy, AccuracyItem{
			Name:      s.Name,
			Value:     Decimal(s.Value) + "%",
			Width:     percent(s.Value),
			TextClass: text,
			BarClass:  bar,
		})
	}
	return page
}
