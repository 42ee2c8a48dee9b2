package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/oarkflow/zeit/pkg/gate"
	"github.com/oarkflow/zeit/pkg/http/responses"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

// SecretKey carries the typed secret across a reveal or hide redirect.
const SecretKey = "secret"

// Guard lets a view through when it is unprotected or its gate for this
// session is Authenticated. Every other request gets the gate page instead
// of the content.
func Guard(c *fiber.Ctx) error {
	module := views.Resolve(c.Params("id"))
	snap, protected := objects.Gates.Snapshot(SessionID(c), module.ID)
	if !protected {
		return c.Next()
	}
	responses.NoCache(c)
	if snap.State == gate.Authenticated {
		return c.Next()
	}
	if utils.WantsJSON(c) {
		return c.Status(gateStatus(snap)).JSON(fiber.Map{
			"success": false,
			"view":    module.ID,
			"gate":    snap,
			"error":   views.GateMessage(snap),
		})
	}
	return RenderGate(c, module, snap)
}

// RenderGate writes the locked or blocked gate page for module.
func RenderGate(c *fiber.Ctx, module views.Module, snap gate.Snapshot) error {
	data := flash.Get(c)
	input, _ := data[SecretKey].(string)
	notice, _ := data[NoticeKey].(string)
	template := utils.GateLockedTemplate
	if snap.State == gate.Blocked {
		template = utils.GateBlockedTemplate
	}
	c.Status(gateStatus(snap))
	return responses.Render(c, template, fiber.Map{
		"Title":  snap.Title,
		"Chrome": responses.NewChrome(c, module),
		"Gate":   views.NewGateView(module.ID, snap, input),
		"Notice": notice,
	})
}

func gateStatus(snap gate.Snapshot) int {
	if snap.State == gate.Blocked {
		return fiber.StatusForbidden
	}
	return fiber.StatusUnauthorized
}
