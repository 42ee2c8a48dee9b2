package models

import (
	"time"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"` // headquarters, port, border, warehouse, customer
}

type KPIMetric struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Value      string   `json:"value"`
	Unit       string   `json:"unit,omitempty"`
	Trend      Trend    `json:"trend"`
	TrendValue *float64 `json:"trend_value,omitempty"`
	Status     string   `json:"status,omitempty"` // success, warning, danger
}

type CargoDetails struct {
	ID                  string   `json:"id"`
	Description         string   `json:"description"`
	Weight              float64  `json:"weight"`
	Volume              float64  `json:"volume"`
	Client              string   `json:"client"`
	Type                string   `json:"type"` // automotive, oversized, standard
	SpecialRequirements []string `json:"special_requirements,omitempty"`
}

type Route struct {
	ID                string        `json:"id"`
	Origin            Location      `json:"origin"`
	Destination       Location      `json:"destination"`
	Distance          float64       `json:"distance"`
	EstimatedTime     float64       `json:"estimated_time"`
	ActualTime        float64       `json:"actual_time,omitempty"`
	Status            string        `json:"status"` // planned, active, completed, delayed
	VehicleID         string        `json:"vehicle_id,omitempty"`
	Cargo             *CargoDetails `json:"cargo,omitempty"`
	OptimizationScore int           `json:"optimization_score,omitempty"`
}

type Vehicle struct {
	ID              string   `json:"id"`
	PlateNumber     string   `json:"plate_number"`
	Type            string   `json:"type"`   // standard, oversized, specialized
	Status          string   `json:"status"` // available, in-transit, maintenance, offline
	Location        Location `json:"location"`
	Capacity        float64  `json:"capacity"`
	UtilizationRate float64  `json:"utilization_rate"`
	GPSEnabled      bool     `json:"gps_enabled"`
}

type ModulePerformance struct {
	Efficiency     float64 `json:"efficiency"`
	Accuracy       float64 `json:"accuracy"`
	ProcessingTime float64 `json:"processing_time"`
}

type ModuleROI struct {
	CostSavings   float64 `json:"cost_savings"`
	TimeReduction float64 `json:"time_reduction"`
}

type AIModule struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Status       string            `json:"status"` // active, inactive, implementing
	Features     []string          `json:"features"`
	Integrations []string          `json:"integrations"`
	Performance  ModulePerformance `json:"performance"`
	ROI          *ModuleROI        `json:"roi,omitempty"`
}

type AIClassification struct {
	Confidence     float64  `json:"confidence"`
	SuggestedCodes []string `json:"suggested_codes"`
}

type CustomsDocument struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`   // import, export, transit
	Status           string            `json:"status"` // pending, processing, approved, rejected
	DocumentNumber   string            `json:"document_number"`
	SubmissionDate   time.Time         `json:"submission_date"`
	ProcessingTime   float64           `json:"processing_time"`
	AIClassification *AIClassification `json:"ai_classification,omitempty"`
}

type OperationalAlert struct {
	ID             string    `json:"id"`
	Severity       string    `json:"severity"` // critical, high, medium, low
	Type           string    `json:"type"`     // delay, maintenance, weather, customs, security
	Message        string    `json:"message"`
	AffectedRoutes []string  `json:"affected_routes"`
	Timestamp      time.Time `json:"timestamp"`
	Acknowledged   bool      `json:"acknowledged"`
}

type Risk struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Probability string `json:"probability"` // low, medium, high
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

type Milestone struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"` // pending, achieved, delayed
	Dependencies []string  `json:"dependencies,omitempty"`
}

type MethodologyPhase struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Duration     string      `json:"duration"`
	Status       string      `json:"status"` // pending, in-progress, completed
	Deliverables []string    `json:"deliverables"`
	Risks        []Risk      `json:"risks"`
	Milestones   []Milestone `json:"milestones"`
}

type Technology struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Purpose string `json:"purpose"`
	Status  string `json:"status"` // current, planned, evaluating
}

type TechnologyStack struct {
	Category     string       `json:"category"`
	Technologies []Technology `json:"technologies"`
}

// Gate event outcomes.
const (
	OutcomeAuthenticated     = "authenticated"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeLockedOut         = "locked_out"
	OutcomeIgnored           = "ignored"
	OutcomeRateLimited       = "rate_limited"
)

type GateEvent struct {
	ID           int64     `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"session_id"`
	ViewID       string    `db:"view_id" json:"view_id"`
	Outcome      string    `db:"outcome" json:"outcome"`
	State        string    `db:"state" json:"state"`
	AttemptCount int       `db:"attempt_count" json:"attempt_count"`
	IPAddress    string    `db:"ip_address" json:"ip_address"`
	UserAgent    string    `db:"user_agent" json:"user_agent"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Identity is the application and operator shown in the page chrome.
type Identity struct {
	AppName  string
	UserName string
	UserRole string
}

type ErrorPageData struct {
	Title       string
	StatusCode  int
	Message     string
	Description string
	Technical   string
	RetryURL    string
	ErrorID     string
}
