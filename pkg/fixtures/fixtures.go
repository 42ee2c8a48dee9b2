// Package fixtures holds the static dataset rendered by the dashboard.
// Every accessor builds fresh values so callers never share mutable state.
package fixtures

import (
	"time"

	"github.com/oarkflow/zeit/pkg/models"
)

type Static struct {
	now func() time.Time
}

func New(now func() time.Time) *Static {
	if now == nil {
		now = time.Now
	}
	return &Static{now: now}
}

func float(v float64) *float64 {
	return &v
}

func (s *Static) Locations() []models.Location {
	return []models.Location{
		{ID: "qro", Name: "Querétaro HQ", City: "Querétaro", State: "QRO", Country: "México", Coordinates: models.Coordinates{Lat: 20.5888, Lng: -100.3899}, Type: "headquarters"},
		{ID: "gto", Name: "GTO Puerto Interior", City: "Silao", State: "GTO", Country: "México", Coordinates: models.Coordinates{Lat: 20.9434, Lng: -101.4263}, Type: "warehouse"},
		{ID: "nld", Name: "Nuevo Laredo", City: "Nuevo Laredo", State: "TAM", Country: "México", Coordinates: models.Coordinates{Lat: 27.4861, Lng: -99.5077}, Type: "border"},
		{ID: "tij", Name: "Tijuana", City: "Tijuana", State: "BC", Country: "México", Coordinates: models.Coordinates{Lat: 32.5149, Lng: -117.0382}, Type: "border"},
		{ID: "mzo", Name: "Manzanillo", City: "Manzanillo", State: "COL", Country: "México", Coordinates: models.Coordinates{Lat: 19.0514, Lng: -104.3175}, Type: "port"},
		{ID: "ver", Name: "Veracruz", City: "Veracruz", State: "VER", Country: "México", Coordinates: models.Coordinates{Lat: 19.1738, Lng: -96.1342}, Type: "port"},
		{ID: "cdmx", Name: "Ciudad de México", City: "CDMX", State: "CDMX", Country: "México", Coordinates: models.Coordinates{Lat: 19.4326, Lng: -99.1332}, Type: "customer"},
	}
}

func (s *Static) KPIMetrics() []models.KPIMetric {
	return []models.KPIMetric{
		{ID: "fleet", Title: "Flota Activa", Value: "88", Unit: "vehículos", Trend: models.TrendStable, Status: "success"},
		{ID: "utilization", Title: "Utilización de Flota", Value: "87%", Trend: models.TrendUp, TrendValue: float(3.2), Status: "success"},
		{ID: "ontime", Title: "Entregas a Tiempo", Value: "94.6%", Trend: models.TrendUp, TrendValue: float(1.8), Status: "success"},
		{ID: "customs", Title: "Tiempo Promedio Aduana", Value: "2.4", Unit: "horas", Trend: models.TrendDown, TrendValue: float(-15), Status: "success"},
		{ID: "revenue", Title: "Ingresos Mensuales", Value: "$12.4M", Unit: "MXN", Trend: models.TrendUp, TrendValue: float(8.5), Status: "success"},
		{ID: "incidents", Title: "Incidentes Seguridad", Value: "0", Unit: "este mes", Trend: models.TrendStable, Status: "success"},
	}
}

func (s *Static) ActiveRoutes() []models.Route {
	loc := s.Locations()
	return []models.Route{
		{
			ID:                "r001",
			Origin:            loc[0],
			Destination:       loc[2],
			Distance:          820,
			EstimatedTime:     8.2,
			ActualTime:        8.5,
			Status:            "active",
			VehicleID:         "v001",
			Cargo:             &models.CargoDetails{ID: "c001", Description: "Componentes BMW", Weight: 24000, Volume: 85, Client: "BMW", Type: "automotive"},
			OptimizationScore: 92,
		},
		{
			ID:                "r002",
			Origin:            loc[1],
			Destination:       loc[3],
			Distance:          1850,
			EstimatedTime:     18.5,
			Status:            "active",
			VehicleID:         "v002",
			Cargo:             &models.CargoDetails{ID: "c002", Description: "Partes Tesla", Weight: 18000, Volume: 70, Client: "Tesla", Type: "automotive"},
			OptimizationScore: 88,
		},
		{
			ID:                "r003",
			Origin:            loc[0],
			Destination:       loc[4],
			Distance:          680,
			EstimatedTime:     6.8,
			Status:            "planned",
			Cargo:             &models.CargoDetails{ID: "c003", Description: "Equipo Nissan", Weight: 22000, Volume: 90, Client: "Nissan", Type: "oversized"},
			OptimizationScore: 95,
		},
	}
}

func (s *Static) FleetVehicles() []models.Vehicle {
	loc := s.Locations()
	return []models.Vehicle{
		{ID: "v001", PlateNumber: "ZTL-2401", Type: "standard", Status: "in-transit", Location: loc[0], Capacity: 30000, UtilizationRate: 80, GPSEnabled: true},
		{ID: "v002", PlateNumber: "ZTL-2402", Type: "specialized", Status: "in-transit", Location: loc[1], Capacity: 25000, UtilizationRate: 72, GPSEnabled: true},
		{ID: "v003", PlateNumber: "ZTL-2403", Type: "oversized", Status: "available", Location: loc[0], Capacity: 35000, UtilizationRate: 0, GPSEnabled: true},
		{ID: "v004", PlateNumber: "ZTL-2404", Type: "standard", Status: "maintenance", Location: loc[1], Capacity: 30000, UtilizationRate: 0, GPSEnabled: true},
	}
}

func (s *Static) AIModules() []models.AIModule {
	return []models.AIModule{
		{
			ID:           "ai-routes",
			Name:         "Optimización de Rutas IA",
			Description:  "Optimización inteligente de rutas con análisis en tiempo real de tráfico, clima y condiciones viales",
			Status:       "active",
			Features:     []string{"Análisis predictivo de tráfico", "Integración meteorológica", "Cálculo dinámico de rutas", "Ahorro de combustible"},
			Integrations: []string{"GPS Fleet", "Weather API", "Traffic Systems"},
			Performance:  models.ModulePerformance{Efficiency: 92, Accuracy: 96, ProcessingTime: 1.2},
			ROI:          &models.ModuleROI{CostSavings: 18, TimeReduction: 22},
		},
		{
			ID:           "ai-customs",
			Name:         "Inteligencia Aduanal",
			Description:  "Procesamiento automatizado de documentos aduanales con clasificación IA y predicción de tiempos",
			Status:       "active",
			Features:     []string{"Clasificación automática", "Validación de documentos", "Predicción de tiempos", "Alertas regulatorias"},
			Integrations: []string{"SAT", "VUCEM", "Customs Database"},
			Performance:  models.ModulePerformance{Efficiency: 88, Accuracy: 94, ProcessingTime: 0.8},
			ROI:          &models.ModuleROI{CostSavings: 15, TimeReduction: 40},
		},
		{
			ID:           "ai-demand",
			Name:         "Análisis Predictivo",
			Description:  "Pronóstico de demanda para el sector automotriz con análisis de tendencias estacionales",
			Status:       "implementing",
			Features:     []string{"Pronóstico de demanda", "Análisis estacional", "Recomendaciones de capacidad", "Inteligencia de mercado"},
			Integrations: []string{"ERP", "Market Data", "Client Systems"},
			Performance:  models.ModulePerformance{Efficiency: 85, Accuracy: 91, ProcessingTime: 2.5},
			ROI:          &models.ModuleROI{CostSavings: 12, TimeReduction: 15},
		},
		{
			ID:           "ai-maintenance",
			Name:         "Mantenimiento Predictivo",
			Description:  "Predicción de fallas y mantenimiento preventivo basado en análisis de datos IoT",
			Status:       "implementing",
			Features:     []string{"Análisis IoT", "Predicción de fallas", "Programación automática", "Optimización de costos"},
			Integrations: []string{"Vehicle Sensors", "Maintenance Systems"},
			Performance:  models.ModulePerformance{Efficiency: 90, Accuracy: 93, ProcessingTime: 1.5},
			ROI:          &models.ModuleROI{CostSavings: 25, TimeReduction: 30},
		},
		{
			ID:           "ai-pricing",
			Name:         "Inteligencia de Precios",
			Description:  "Sistema dinámico de pricing basado en demanda, competencia y condiciones de mercado",
			Status:       "inactive",
			Features:     []string{"Análisis competitivo", "Pricing dinámico", "Optimización de márgenes", "Pronóstico de ingresos"},
			Integrations: []string{"Market APIs", "Competitor Data"},
			Performance:  models.ModulePerformance{Efficiency: 87, Accuracy: 92, ProcessingTime: 1.0},
			ROI:          &models.ModuleROI{CostSavings: 8, TimeReduction: 10},
		},
		{
			ID:           "ai-security",
			Name:         "Seguridad Inteligente",
			Description:  "Monitoreo de seguridad en tiempo real con detección de anomalías y respuesta automatizada",
			Status:       "active",
			Features:     []string{"Detección de anomalías", "Alertas en tiempo real", "Análisis de riesgos", "Respuesta automatizada"},
			Integrations: []string{"Security Systems", "GPS", "Alert Systems"},
			Performance:  models.ModulePerformance{Efficiency: 94, Accuracy: 97, ProcessingTime: 0.5},
			ROI:          &models.ModuleROI{CostSavings: 20, TimeReduction: 35},
		},
	}
}

func (s *Static) OperationalAlerts() []models.OperationalAlert {
	now := s.now()
	return []models.OperationalAlert{
		{
			ID:             "alert001",
			Severity:       "medium",
			Type:           "weather",
			Message:        "Lluvia intensa en carretera Querétaro-Nuevo Laredo km 450",
			AffectedRoutes: []string{"r001"},
			Timestamp:      now,
			Acknowledged:   false,
		},
		{
			ID:             "alert002",
			Severity:       "high",
			Type:           "customs",
			Message:        "Retraso en procesamiento aduanal - Nuevo Laredo",
			AffectedRoutes: []string{"r001"},
			Timestamp:      now.Add(-time.Hour),
			Acknowledged:   true,
		},
		{
			ID:             "alert003",
			Severity:       "low",
			Type:           "maintenance",
			Message:        "Mantenimiento programado vehículo ZTL-2404",
			AffectedRoutes: []string{},
			Timestamp:      now.Add(-2 * time.Hour),
			Acknowledged:   true,
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *Static) MethodologyPhases() []models.MethodologyPhase {
	return []models.MethodologyPhase{
		{
			ID:           "phase1",
			Name:         "Evaluación y Análisis",
			Duration:     "4 semanas",
			Status:       "completed",
			Deliverables: []string{"Análisis de situación actual", "Identificación de gaps", "Definición de objetivos"},
			Risks: []models.Risk{
				{ID: "r1", Description: "Resistencia al cambio", Probability: "medium", Impact: "high", Mitigation: "Plan de gestión del cambio"},
			},
			Milestones: []models.Milestone{
				{ID: "m1", Name: "Análisis completado", Date: day(2024, time.March, 15), Status: "achieved"},
			},
		},
		{
			ID:           "phase2",
			Name:         "Diseño de Solución",
			Duration:     "6 semanas",
			Status:       "in-progress",
			Deliverables: []string{"Arquitectura técnica", "Especificaciones funcionales", "Plan de integración"},
			Risks: []models.Risk{
				{ID: "r2", Description: "Complejidad técnica", Probability: "high", Impact: "medium", Mitigation: "POC y validación temprana"},
			},
			Milestones: []models.Milestone{
				{ID: "m2", Name: "Arquitectura aprobada", Date: day(2024, time.April, 30), Status: "pending"},
			},
		},
		{
			ID:           "phase3",
			Name:         "Implementación",
			Duration:     "16 semanas",
			Status:       "pending",
			Deliverables: []string{"Módulos IA implementados", "Integraciones completadas", "Sistema en producción"},
			Risks: []models.Risk{
				{ID: "r3", Description: "Retrasos en integración", Probability: "medium", Impact: "medium", Mitigation: "Buffer de tiempo y recursos"},
			},
			Milestones: []models.Milestone{
				{ID: "m3", Name: "Go-live", Date: day(2024, time.August, 30), Status: "pending"},
			},
		},
	}
}

func (s *Static) TechnologyStack() []models.TechnologyStack {
	return []models.TechnologyStack{
		{
			Category: "Frontend",
			Technologies: []models.Technology{
				{Name: "React 18", Version: "18.2.0", Purpose: "Framework UI", Status: "current"},
				{Name: "TypeScript", Version: "5.0", Purpose: "Type safety", Status: "current"},
				{Name: "Tailwind CSS", Version: "3.3", Purpose: "Styling", Status: "current"},
			},
		},
		{
			Category: "Backend",
			Technologies: []models.Technology{
				{Name: "Node.js", Version: "20 LTS", Purpose: "Runtime", Status: "planned"},
				{Name: "PostgreSQL", Version: "15", Purpose: "Database", Status: "planned"},
				{Name: "Redis", Version: "7", Purpose: "Caching", Status: "planned"},
			},
		},
		{
			Category: "AI/ML",
			Technologies: []models.Technology{
				{Name: "TensorFlow", Purpose: "ML Models", Status: "evaluating"},
				{Name: "Python", Version: "3.11", Purpose: "AI Development", Status: "planned"},
				{Name: "Apache Spark", Purpose: "Big Data Processing", Status: "evaluating"},
			},
		},
		{
			Category: "Infrastructure",
			Technologies: []models.Technology{
				{Name: "AWS", Purpose: "Cloud Platform", Status: "planned"},
				{Name: "Docker", Purpose: "Containerization", Status: "planned"},
				{Name: "Kubernetes", Purpose: "Orchestration", Status: "evaluating"},
			},
		},
	}
}

func (s *Static) CustomsDocuments() []models.CustomsDocument {
	now := s.now()
	return []models.CustomsDocument{
		{
			ID:               "doc001",
			Type:             "export",
			Status:           "approved",
			DocumentNumber:   "EXP-2024-0342",
			SubmissionDate:   now.Add(-24 * time.Hour),
			ProcessingTime:   2.1,
			AIClassification: &models.AIClassification{Confidence: 96, SuggestedCodes: []string{"8708.29.99", "8708.30.01"}},
		},
		{
			ID:               "doc002",
			Type:             "import",
			Status:           "processing",
			DocumentNumber:   "IMP-2024-0488",
			SubmissionDate:   now.Add(-time.Hour),
			ProcessingTime:   1.2,
			AIClassification: &models.AIClassification{Confidence: 92, SuggestedCodes: []string{"8544.30.01"}},
		},
		{
			ID:               "doc003",
			Type:             "transit",
			Status:           "pending",
			DocumentNumber:   "TRA-2024-0156",
			SubmissionDate:   now,
			ProcessingTime:   0,
			AIClassification: &models.AIClassification{Confidence: 88, SuggestedCodes: []string{"8703.23.01"}},
		},
	}
}
