package contracts

import (
	"github.com/oarkflow/zeit/pkg/models"
)

// Provider supplies the fixture records rendered by the dashboard modules.
// Implementations return copies; callers may not mutate shared state through them.
type Provider interface {
	Locations() []models.Location
	KPIMetrics() []models.KPIMetric
	ActiveRoutes() []models.Route
	FleetVehicles() []models.Vehicle
	AIModules() []models.AIModule
	OperationalAlerts() []models.OperationalAlert
	CustomsDocuments() []models.CustomsDocument
	MethodologyPhases() []models.MethodologyPhase
	TechnologyStack() []models.TechnologyStack

	Executive() models.ExecutiveFixtures
	RouteOptimization() models.RouteOptimizationFixtures
	Analytics() models.AnalyticsFixtures
	Customs() models.CustomsFixtures
	Operations() models.OperationsFixtures
	Methodology() models.MethodologyFixtures
}
