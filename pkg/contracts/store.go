package contracts

import (
	"github.com/oarkflow/zeit/pkg/models"
)

// --- Audit Storage Interface ---
type Storage interface {
	RecordGateEvent(event models.GateEvent) error
	RecentGateEvents(limit int) ([]models.GateEvent, error)
	Close() error
}
