package views

import (
	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

type DocumentItem struct {
	models.CustomsDocument
	Status         Style
	TypeLabel      string
	ProcessingTime string
	Submitted      string
	Selected       bool
	URL            string
}

type TariffItem struct {
	models.TariffSuggestion
	Confidence string
}

type RegulatoryItem struct {
	models.RegulatoryUpdate
	Class string
}

type CustomsPage struct {
	Metrics            models.CustomsMetrics
	DocumentsProcessed string
	Mode               string
	Modes              []Choice
	Status             string
	StatusFilters      []Choice
	Comparison         BarChart
	DocumentTypes      PieChart
	Documents          []DocumentItem
	Tariffs            []TariffItem
	Regulatory         []RegulatoryItem
	Highlights         []string
	Timeline           LineChart
}

// Customs builds the customs intelligence view. status filters the
// documents, doc expands one of them and mode picks the processing mode.
func Customs(p contracts.Provider, q Query) any {
	c := p.Customs()
	page := &CustomsPage{
		Metrics:            c.Metrics,
		DocumentsProcessed: Number(float64(c.Metrics.DocumentsProcessed)),
		DocumentTypes:      NewPieChart(c.DocumentTypes),
		Highlights:         c.Highlights,
	}
	page.Mode, page.Modes = choose(q, "mode", c.ProcessingModes, "ai-assisted")
	page.Status, page.StatusFilters = choose(q, "status", c.StatusFilters, "all")

	methods := make([]string, 0, len(c.Comparison))
	var times, costs, accuracy []float64
	for _, row := range c.Comparison {
		methods = append(methods, row.Method)
		times = append(times, row.Time)
		costs = append(costs, row.Cost)
		accuracy = append(accuracy, row.Accuracy)
	}
	page.Comparison = NewBarChart(methods,
		Series{Name: "Tiempo (min)", Color: "#3b82f6", Values: times},
		Series{Name: "Costo Relativo", Color: "#f59e0b", Values: costs},
		Series{Name: "Precisión %", Color: "#10b981", Values: accuracy},
	)

	selected := q.Get("doc", "")
	for _, d := range p.CustomsDocuments() {
		if page.Status != "all" && d.Status != page.Status {
			continue
		}
		page.Documents = append(page.Documents, DocumentItem{
			CustomsDocument: d,
			Status:          documentStatusStyles.of(d.Status),
			TypeLabel:       Capitalize(d.Type),
			ProcessingTime:  Fixed(d.ProcessingTime, 1) + "h",
			Submitted:       Date(d.SubmissionDate),
			Selected:        d.ID == selected,
			URL:             q.Toggle("doc", d.ID).Href(),
		})
	}

	for _, t := range c.Tariffs {
		page.Tariffs = append(page.Tariffs, TariffItem{TariffSuggestion: t, Confidence: Decimal(t.Confidence) + "%"})
	}
	for _, r := range c.Regulatory {
		page.Regulatory = append(page.Regulatory, RegulatoryItem{RegulatoryUpdate: r, Class: tone(r.Tone)})
	}

	hours := make([]string, 0, len(c.Timeline))
	var submitted, processed, approved []float64
	for _, t := range c.Timeline {
		hours = append(hours, t.Hour)
		submitted = append(submitted, t.Submitted)
		processed = append(processed, t.Processed)
		approved = append(approved, t.Approved)
	}
	page.Timeline = NewLineChart(hours, []Series{
		{Name: "Enviados", Color: "#6b7280", Values: submitted},
		{Name: "Procesados", Color: "#3b82f6", Values: processed},
		{Name: "Aprobados", Color: "#10b981", Values: approved},
	})
	return page
}
