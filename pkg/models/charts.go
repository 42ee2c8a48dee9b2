package models

import "time"

// Fixture records backing the per-module charts and panels.

type RevenuePoint struct {
	Month   string
	Revenue float64
	Costs   float64
}

type Share struct {
	Name  string
	Value float64
	Color string
}

type RoutePerformance struct {
	Route   string
	OnTime  float64
	Delayed float64
}

type ExecutiveFixtures struct {
	Revenue          []RevenuePoint
	FleetUtilization []Share
	RoutePerformance []RoutePerformance
}

type OptimizationMetrics struct {
	TotalSavings    float64
	TimeSaved       float64
	FuelReduction   float64
	CarbonReduction float64
	CostsAvoided    float64
}

type MapPosition struct {
	X float64
	Y float64
}

type IntegrationStatus struct {
	Name   string
	Status string // active, beta, development
}

type Recommendation struct {
	Title   string
	Detail  string
	Outcome string
	Icon    string
	Tone    string
}

type RouteOptimizationFixtures struct {
	Metrics            OptimizationMetrics
	LocationPositions  map[string]MapPosition
	Integrations       []IntegrationStatus
	Recommendations    []Recommendation
	OptimizationLevels []Option
}

type Option struct {
	Value string
	Label string
}

type DemandForecast struct {
	Month      string
	Historical *float64
	Predicted  float64
	Confidence float64
	UpperBound float64
	LowerBound float64
}

type SeasonalTrend struct {
	Client string
	Q1     float64
	Q2     float64
	Q3     float64
	Q4     float64
}

type CapacityRecommendation struct {
	Resource    string
	Current     float64
	Recommended float64
	Utilization float64
}

type MarketTrend struct {
	Indicator string
	Value     string
	Trend     string // up, down, neutral
	Impact    string // high, medium, low
}

type RiskFactor struct {
	Factor      string
	Probability string
	Impact      string
	Mitigation  string
}

type QuickStat struct {
	Value string
	Label string
	Tone  string
}

type AnalyticsFixtures struct {
	QuickStats      []QuickStat
	Demand          []DemandForecast
	DemandInsight   string
	Seasonal        []SeasonalTrend
	SeasonalInsight string
	Capacity        []CapacityRecommendation
	Market          []MarketTrend
	Risks           []RiskFactor
	ModelAccuracy   []Share
	AnalysisTypes   []Option
	Timeframes      []Option
}

type CustomsMetrics struct {
	ClassificationAccuracy float64
	ProcessingSpeed        float64
	CostSavings            float64
	TimeReduction          float64
	DocumentsProcessed     int
}

type ProcessingComparison struct {
	Method   string
	Time     float64
	Cost     float64
	Accuracy float64
}

type TimelinePoint struct {
	Hour      string
	Submitted float64
	Processed float64
	Approved  float64
}

type TariffSuggestion struct {
	Code        string
	Description string
	Confidence  float64
	Frequency   int
}

type RegulatoryUpdate struct {
	Title     string
	Detail    string
	Effective string
	Tone      string
}

type CustomsFixtures struct {
	Metrics         CustomsMetrics
	Comparison      []ProcessingComparison
	DocumentTypes   []Share
	Timeline        []TimelinePoint
	Tariffs         []TariffSuggestion
	Regulatory      []RegulatoryUpdate
	Highlights      []string
	ProcessingModes []Option
	StatusFilters   []Option
}

type OperationsStatus struct {
	ActiveVehicles    int
	TotalFleet        int
	OnTimeDeliveries  float64
	AverageSpeed      float64
	FuelEfficiency    float64
	GPSConnectivity   float64
	SecurityIncidents int
}

type Telemetry struct {
	Location    Coordinates
	Speed       float64
	Fuel        float64
	Engine      string
	Temperature float64
	LastUpdate  time.Time
	Driver      string
	Route       string
	ETA         string
	Cargo       string
}

type ResponseProtocol struct {
	Type     string
	Severity string
	Actions  []string
}

type SystemStatus struct {
	Name   string
	Status string // operational, degraded
	Detail string
}

type OperationsFixtures struct {
	Status          OperationsStatus
	Telemetry       Telemetry
	Protocols       []ResponseProtocol
	CommandCenter   []SystemStatus
	MonitoringModes []Option
	SeverityFilters []Option
}

type TimelineEntry struct {
	Week       int
	Phase      string
	Activities []string
}

type IntegrationPoint struct {
	System     string
	Type       string
	Status     string // active, planned
	Complexity string // High, Medium, Low
}

type ImplementationGuide struct {
	Title        string
	Description  string
	Duration     string
	Team         string
	Deliverables []string
}

type MethodologyFixtures struct {
	Tabs         []Option
	Timeline     []TimelineEntry
	Integrations []IntegrationPoint
	Guides       []ImplementationGuide
}
