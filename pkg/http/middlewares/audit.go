package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/gate"
	"github.com/oarkflow/zeit/pkg/models"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/utils"
)

// Audit stores a gate event for the current request. Storage failures are
// logged and never reach the caller.
func Audit(c *fiber.Ctx, viewID, outcome string, snap gate.Snapshot) {
	if objects.Store == nil {
		return
	}
	event := models.GateEvent{
		SessionID:    SessionID(c),
		ViewID:       viewID,
		Outcome:      outcome,
		State:        snap.State.String(),
		AttemptCount: snap.AttemptCount,
		IPAddress:    utils.GetClientIP(c),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
		CreatedAt:    time.Now(),
	}
	if err := objects.Store.RecordGateEvent(event); err != nil {
		log.Printf("gate audit: %v", err)
	}
}
