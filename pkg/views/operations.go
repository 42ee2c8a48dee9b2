package views

import (
	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

type VehicleItem struct {
	models.Vehicle
	Status   Style
	Capacity string
	Width    float64
	Selected bool
	URL      string
}

type TelemetryView struct {
	models.Telemetry
	Plate       string
	EngineClass string
	Updated     string
}

type ProtocolItem struct {
	models.ResponseProtocol
	Style Style
}

type SystemItem struct {
	models.SystemStatus
	Style Style
}

type MonitoredRoute struct {
	models.Route
	Path string
}

type OperationsPage struct {
	Status        models.OperationsStatus
	Mode          string
	Modes         []Choice
	Severity      string
	Severities    []Choice
	Vehicles      []VehicleItem
	Telemetry     *TelemetryView
	Alerts        []AlertItem
	Protocols     []ProtocolItem
	ActiveRoutes  []MonitoredRoute
	CommandCenter []SystemItem
}

// Operations builds the control tower. Telemetry is only shown while a
// vehicle is selected.
func Operations(p contracts.Provider, q Query) any {
	ops := p.Operations()
	page := &OperationsPage{Status: ops.Status}
	page.Mode, page.Modes = choose(q, "mode", ops.MonitoringModes, "real-time")
	page.Severity, page.Severities = choose(q, "severity", ops.SeverityFilters, "all")

	selected := q.Get("vehicle", "")
	for _, v := range p.FleetVehicles() {
		item := VehicleItem{
			Vehicle:  v,
			Status:   vehicleStatusStyles.of(v.Status),
			Capacity: Number(v.Capacity) + " kg",
			Width:    percent(v.UtilizationRate),
			Selected: v.ID == selected,
			URL:      q.Toggle("vehicle", v.ID).Href(),
		}
		if item.Selected {
			engine := "text-green-600"
			if ops.Telemetry.Engine != "Normal" {
				engine = "text-red-600"
			}
			page.Telemetry = &TelemetryView{
				Telemetry:   ops.Telemetry,
				Plate:       v.PlateNumber,
				EngineClass: engine,
				Updated:     ops.Telemetry.LastUpdate.Format("15:04:05"),
			}
		}
		page.Vehicles = append(page.Vehicles, item)
	}

	for _, a := range p.OperationalAlerts() {
		if page.Severity != "all" && a.Severity != page.Severity {
			continue
		}
		page.Alerts = append(page.Alerts, alertItem(a))
	}
	for _, pr := range ops.Protocols {
		page.Protocols = append(page.Protocols, ProtocolItem{ResponseProtocol: pr, Style: protocolSeverityStyles.of(pr.Severity)})
	}
	for _, r := range p.ActiveRoutes() {
		if r.Status != "active" {
			continue
		}
		page.ActiveRoutes = append(page.ActiveRoutes, MonitoredRoute{Route: r, Path: routePath(r)})
	}
	for _, s := range ops.CommandCenter {
		page.CommandCenter = append(page.CommandCenter, SystemItem{SystemStatus: s, Style: systemStatusStyles.of(s.Status)})
	}
	return page
}
