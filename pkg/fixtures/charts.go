package fixtures

import (
	"github.com/oarkflow/zeit/pkg/models"
)

func (s *Static) Executive() models.ExecutiveFixtures {
	return models.ExecutiveFixtures{
		Revenue: []models.RevenuePoint{
			{Month: "Ene", Revenue: 10.2, Costs: 7.8},
			{Month: "Feb", Revenue: 10.8, Costs: 8.1},
			{Month: "Mar", Revenue: 11.5, Costs: 8.4},
			{Month: "Abr", Revenue: 11.9, Costs: 8.6},
			{Month: "May", Revenue: 12.4, Costs: 8.9},
		},
		FleetUtilization: []models.Share{
			{Name: "En Ruta", Value: 68, Color: "#059669"},
			{Name: "Disponible", Value: 12, Color: "#3b82f6"},
			{Name: "Mantenimiento", Value: 8, Color: "#d97706"},
			{Name: "Fuera de Servicio", Value: 12, Color: "#6b7280"},
		},
		RoutePerformance: []models.RoutePerformance{
			{Route: "QRO-NLD", OnTime: 95, Delayed: 5},
			{Route: "GTO-TIJ", OnTime: 92, Delayed: 8},
			{Route: "QRO-MZO", OnTime: 98, Delayed: 2},
			{Route: "GTO-CDMX", OnTime: 94, Delayed: 6},
			{Route: "VER-QRO", OnTime: 91, Delayed: 9},
		},
	}
}

func (s *Static) RouteOptimization() models.RouteOptimizationFixtures {
	return models.RouteOptimizationFixtures{
		Metrics: models.OptimizationMetrics{
			TotalSavings:    18.5,
			TimeSaved:       22,
			FuelReduction:   15.2,
			CarbonReduction: 12.8,
			CostsAvoided:    450000,
		},
		LocationPositions: map[string]models.MapPosition{
			"qro":  {X: 45, Y: 60},
			"gto":  {X: 40, Y: 65},
			"nld":  {X: 55, Y: 25},
			"tij":  {X: 15, Y: 30},
			"mzo":  {X: 35, Y: 85},
			"ver":  {X: 75, Y: 75},
			"cdmx": {X: 50, Y: 70},
		},
		Integrations: []models.IntegrationStatus{
			{Name: "Análisis de Tráfico", Status: "active"},
			{Name: "Predicción Meteorológica", Status: "active"},
			{Name: "Optimización Combustible", Status: "beta"},
			{Name: "Análisis Aduanal", Status: "development"},
		},
		Recommendations: []models.Recommendation{
			{Title: "Ruta Querétaro-Nuevo Laredo", Detail: "Desvío por autopista 57D puede ahorrar 45 minutos", Outcome: "Ahorro estimado: $1,200 MXN", Icon: "route", Tone: "blue"},
			{Title: "Horario Optimizado", Detail: "Salida a las 4:00 AM evita tráfico en zona metropolitana", Outcome: "Ahorro estimado: 1.2 horas", Icon: "clock", Tone: "green"},
			{Title: "Eficiencia Combustible", Detail: "Velocidad constante de 85 km/h maximiza eficiencia", Outcome: "Reducción: 12% combustible", Icon: "fuel", Tone: "orange"},
		},
		OptimizationLevels: []models.Option{
			{Value: "fastest", Label: "Más Rápida"},
			{Value: "cheapest", Label: "Más Económica"},
			{Value: "balanced", Label: "Balanceada"},
			{Value: "eco-friendly", Label: "Eco-Amigable"},
		},
	}
}

func (s *Static) Analytics() models.AnalyticsFixtures {
	return models.AnalyticsFixtures{
		QuickStats: []models.QuickStat{
			{Value: "87%", Label: "Precisión Pronósticos", Tone: "purple"},
			{Value: "+15%", Label: "Crecimiento Previsto", Tone: "green"},
			{Value: "92%", Label: "Utilización Óptima", Tone: "blue"},
			{Value: "3", Label: "Riesgos Identificados", Tone: "orange"},
		},
		Demand: []models.DemandForecast{
			{Month: "Jun 2024", Historical: float(245), Predicted: 250, Confidence: 92, UpperBound: 275, LowerBound: 225},
			{Month: "Jul 2024", Historical: float(280), Predicted: 295, Confidence: 89, UpperBound: 320, LowerBound: 270},
			{Month: "Aug 2024", Historical: float(310), Predicted: 325, Confidence: 85, UpperBound: 355, LowerBound: 295},
			{Month: "Sep 2024", Predicted: 340, Confidence: 82, UpperBound: 375, LowerBound: 305},
			{Month: "Oct 2024", Predicted: 365, Confidence: 78, UpperBound: 405, LowerBound: 325},
			{Month: "Nov 2024", Predicted: 385, Confidence: 75, UpperBound: 430, LowerBound: 340},
		},
		DemandInsight: "Se prevé un crecimiento del 15% en la demanda para Q4 2024, principalmente impulsado por el lanzamiento de nuevos modelos eléctricos.",
		Seasonal: []models.SeasonalTrend{
			{Client: "BMW", Q1: 85, Q2: 120, Q3: 95, Q4: 140},
			{Client: "Tesla", Q1: 110, Q2: 95, Q3: 130, Q4: 165},
			{Client: "Nissan", Q1: 75, Q2: 100, Q3: 85, Q4: 120},
			{Client: "VW", Q1: 90, Q2: 115, Q3: 105, Q4: 135},
		},
		SeasonalInsight: "Tesla y BMW muestran mayor demanda en Q4, alineado con ciclos de producción de fin de año.",
		Capacity: []models.CapacityRecommendation{
			{Resource: "Vehículos Estándar", Current: 65, Recommended: 78, Utilization: 87},
			{Resource: "Vehículos Sobredimensionados", Current: 15, Recommended: 18, Utilization: 92},
			{Resource: "Operadores Certificados", Current: 88, Recommended: 95, Utilization: 89},
			{Resource: "Espacio Almacén (m³)", Current: 12500, Recommended: 14200, Utilization: 85},
		},
		Market: []models.MarketTrend{
			{Indicator: "Producción Automotriz México", Value: "+8.5%", Trend: "up", Impact: "high"},
			{Indicator: "Exportaciones a EE.UU.", Value: "+12.3%", Trend: "up", Impact: "high"},
			{Indicator: "Nuevos Modelos Eléctricos", Value: "+25%", Trend: "up", Impact: "medium"},
			{Indicator: "Costos Combustible", Value: "-3.2%", Trend: "down", Impact: "medium"},
			{Indicator: "Regulaciones Ambientales", Value: "Nuevas", Trend: "neutral", Impact: "low"},
		},
		Risks: []models.RiskFactor{
			{Factor: "Volatilidad Tipo de Cambio", Probability: "Alta", Impact: "Medio", Mitigation: "Cobertura financiera"},
			{Factor: "Escasez Semiconductores", Probability: "Media", Impact: "Alto", Mitigation: "Diversificación proveedores"},
			{Factor: "Cambios Regulatorios", Probability: "Media", Impact: "Medio", Mitigation: "Monitoreo continuo"},
			{Factor: "Competencia Nearshoring", Probability: "Alta", Impact: "Alto", Mitigation: "Diferenciación servicio"},
		},
		ModelAccuracy: []models.Share{
			{Name: "Precisión Demanda", Value: 94.2, Color: "blue"},
			{Name: "Precisión Estacional", Value: 87.8, Color: "green"},
			{Name: "Detección Riesgos", Value: 91.5, Color: "purple"},
			{Name: "Optimización Capacidad", Value: 89.1, Color: "orange"},
		},
		AnalysisTypes: []models.Option{
			{Value: "demand", Label: "Demanda"},
			{Value: "capacity", Label: "Capacidad"},
			{Value: "market", Label: "Mercado"},
			{Value: "risks", Label: "Riesgos"},
		},
		Timeframes: []models.Option{
			{Value: "1month", Label: "1 Mes"},
			{Value: "3months", Label: "3 Meses"},
			{Value: "6months", Label: "6 Meses"},
			{Value: "1year", Label: "1 Año"},
		},
	}
}

func (s *Static) Customs() models.CustomsFixtures {
	return models.CustomsFixtures{
		Metrics: models.CustomsMetrics{
			ClassificationAccuracy: 96.2,
			ProcessingSpeed:        2.4,
			CostSavings:            42,
			TimeReduction:          58,
			DocumentsProcessed:     1247,
		},
		Comparison: []models.ProcessingComparison{
			{Method: "Manual", Time: 8.5, Cost: 100, Accuracy: 92},
			{Method: "Semi-Automatizado", Time: 4.2, Cost: 60, Accuracy: 95},
			{Method: "IA Completa", Time: 2.4, Cost: 35, Accuracy: 96},
		},
		DocumentTypes: []models.Share{
			{Name: "Importación", Value: 45, Color: "#3b82f6"},
			{Name: "Exportación", Value: 35, Color: "#10b981"},
			{Name: "Tránsito", Value: 20, Color: "#f59e0b"},
		},
		Timeline: []models.TimelinePoint{
			{Hour: "00:00", Submitted: 12, Processed: 11, Approved: 10},
			{Hour: "06:00", Submitted: 18, Processed: 17, Approved: 16},
			{Hour: "09:00", Submitted: 28, Processed: 27, Approved: 25},
			{Hour: "12:00", Submitted: 35, Processed: 34, Approved: 32},
			{Hour: "15:00", Submitted: 42, Processed: 41, Approved: 38},
			{Hour: "18:00", Submitted: 25, Processed: 24, Approved: 23},
		},
		Tariffs: []models.TariffSuggestion{
			{Code: "8708.29.99", Description: "Otras partes de carrocería", Confidence: 96, Frequency: 234},
			{Code: "8708.30.01", Description: "Frenos y servofrenos", Confidence: 94, Frequency: 187},
			{Code: "8544.30.01", Description: "Juegos de cables", Confidence: 92, Frequency: 156},
			{Code: "8703.23.01", Description: "Vehículos eléctricos", Confidence: 89, Frequency: 98},
		},
		Regulatory: []models.RegulatoryUpdate{
			{Title: "Nueva Regulación T-MEC", Detail: "Cambios en requisitos de origen para vehículos eléctricos", Effective: "1 Sep 2024", Tone: "orange"},
			{Title: "Actualización SAT", Detail: "Nuevos códigos arancelarios para componentes híbridos", Effective: "15 Aug 2024", Tone: "blue"},
			{Title: "Facilitación Comercial", Detail: "Reducción de tiempos en Nuevo Laredo", Effective: "1 Aug 2024", Tone: "green"},
		},
		Highlights: []string{
			"Tiempo promedio de procesamiento reducido en 58% vs método manual",
			"Precisión en clasificación arancelaria del 96.2%",
			"Tasa de aprobación automática del 87% en documentos bien clasificados",
		},
		ProcessingModes: []models.Option{
			{Value: "manual", Label: "Manual"},
			{Value: "semi-auto", Label: "Semi-Automatizado"},
			{Value: "ai-assisted", Label: "IA Asistida"},
			{Value: "full-ai", Label: "IA Completa"},
		},
		StatusFilters: []models.Option{
			{Value: "all", Label: "Todos"},
			{Value: "pending", Label: "Pendientes"},
			{Value: "processing", Label: "Procesando"},
			{Value: "approved", Label: "Aprobados"},
			{Value: "rejected", Label: "Rechazados"},
		},
	}
}

func (s *Static) Operations() models.OperationsFixtures {
	return models.OperationsFixtures{
		Status: models.OperationsStatus{
			ActiveVehicles:    68,
			TotalFleet:        88,
			OnTimeDeliveries:  94.6,
			AverageSpeed:      78.5,
			FuelEfficiency:    92.3,
			GPSConnectivity:   98.7,
			SecurityIncidents: 0,
		},
		Telemetry: models.Telemetry{
			Location:    models.Coordinates{Lat: 20.5888, Lng: -100.3899},
			Speed:       82,
			Fuel:        78,
			Engine:      "Normal",
			Temperature: 89,
			LastUpdate:  s.now(),
			Driver:      "Carlos Mendoza",
			Route:       "QRO-NLD-001",
			ETA:         "14:30",
			Cargo:       "Componentes BMW - 24,000 kg",
		},
		Protocols: []models.ResponseProtocol{
			{Type: "Retraso Mayor (>2h)", Severity: "high", Actions: []string{"Notificar cliente", "Reasignar recursos", "Activar plan B"}},
			{Type: "Falla Mecánica", Severity: "critical", Actions: []string{"Enviar asistencia", "Reubicar carga", "Contactar seguro"}},
			{Type: "Clima Adverso", Severity: "medium", Actions: []string{"Evaluar ruta", "Reducir velocidad", "Monitorear continuo"}},
			{Type: "Alerta Seguridad", Severity: "critical", Actions: []string{"Contactar autoridades", "Parar vehículo", "Activar GPS tracking"}},
		},
		CommandCenter: []models.SystemStatus{
			{Name: "Sistema Principal", Status: "operational", Detail: "Operacional • 99.8% uptime"},
			{Name: "GPS Tracking", Status: "operational", Detail: "Activo • 88/88 vehículos conectados"},
			{Name: "Comunicaciones", Status: "operational", Detail: "Normal • Todas las unidades"},
			{Name: "Sistema IA", Status: "degraded", Detail: "Mantenimiento • Finaliza en 2h"},
		},
		MonitoringModes: []models.Option{
			{Value: "real-time", Label: "Tiempo Real"},
			{Value: "historical", Label: "Histórico"},
			{Value: "predictive", Label: "Predictivo"},
		},
		SeverityFilters: []models.Option{
			{Value: "all", Label: "Todas"},
			{Value: "critical", Label: "Críticas"},
			{Value: "high", Label: "Altas"},
			{Value: "medium", Label: "Medias"},
			{Value: "low", Label: "Bajas"},
		},
	}
}

func (s *Static) Methodology() models.MethodologyFixtures {
	return models.MethodologyFixtures{
		Tabs: []models.Option{
			{Value: "phases", Label: "Fases del Proyecto"},
			{Value: "technology", Label: "Stack Tecnológico"},
			{Value: "architecture", Label: "Arquitectura de Conexiones"},
			{Value: "implementation", Label: "Guía de Implementación"},
		},
		Timeline: []models.TimelineEntry{
			{Week: 1, Phase: "Análisis", Activities: []string{"Evaluación actual", "Identificación gaps", "Definición objetivos"}},
			{Week: 4, Phase: "Análisis", Activities: []string{"Documentación procesos", "Análisis riesgos", "Plan trabajo"}},
			{Week: 8, Phase: "Diseño", Activities: []string{"Arquitectura técnica", "Especificaciones", "Prototipos"}},
			{Week: 12, Phase: "Diseño", Activities: []string{"Validación diseño", "Plan integración", "Preparación desarrollo"}},
			{Week: 20, Phase: "Implementación", Activities: []string{"Desarrollo módulos", "Integraciones", "Testing"}},
			{Week: 24, Phase: "Implementación", Activities: []string{"Despliegue", "Training", "Go-live"}},
		},
		Integrations: []models.IntegrationPoint{
			{System: "ERP SAP", Type: "Core Business", Status: "planned", Complexity: "High"},
			{System: "GPS Fleet Management", Type: "Operational", Status: "active", Complexity: "Medium"},
			{System: "VUCEM (Customs)", Type: "Regulatory", Status: "planned", Complexity: "High"},
			{System: "Weather APIs", Type: "External Service", Status: "active", Complexity: "Low"},
			{System: "Client Portals", Type: "Customer Facing", Status: "planned", Complexity: "Medium"},
			{System: "Mobile Apps", Type: "Operational", Status: "planned", Complexity: "Medium"},
		},
		Guides: []models.ImplementationGuide{
			{
				Title:        "Preparación de Infraestructura",
				Description:  "Configuración de servidores, bases de datos y networking",
				Duration:     "2 semanas",
				Team:         "DevOps + IT",
				Deliverables: []string{"Servidores configurados", "Bases de datos instaladas", "Conectividad establecida"},
			},
			{
				Title:        "Integración de Sistemas",
				Description:  "Conexión con ERP, GPS y sistemas externos",
				Duration:     "4 semanas",
				Team:         "Backend + Integration",
				Deliverables: []string{"APIs desarrolladas", "Conectores implementados", "Testing de integración"},
			},
			{
				Title:        "Entrenamiento del Personal",
				Description:  "Capacitación en nuevos procesos y herramientas",
				Duration:     "3 semanas",
				Team:         "Training + Operations",
				Deliverables: []string{"Material de entrenamiento", "Sesiones realizadas", "Certificación usuarios"},
			},
			{
				Title:        "Despliegue y Go-Live",
				Description:  "Puesta en producción y soporte inicial",
				Duration:     "2 semanas",
				Team:         "Full Team",
				Deliverables: []string{"Sistema en producción", "Monitoreo activo", "Soporte establecido"},
			},
		},
	}
}
