package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/oarkflow/zeit/pkg/gate"
	"github.com/oarkflow/zeit/pkg/http/middlewares"
	"github.com/oarkflow/zeit/pkg/http/requests"
	"github.com/oarkflow/zeit/pkg/models"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

// protectedView resolves the :id parameter to a module whose gate is
// enabled. Gate endpoints do not fall back to the dashboard.
func protectedView(c *fiber.Ctx) (views.Module, bool) {
	module, ok := views.Lookup(c.Params("id"))
	if !ok || !objects.Gates.IsProtected(module.ID) {
		return views.Module{}, false
	}
	return module, true
}

func submitOutcome(before gate.State, snap gate.Snapshot) string {
	switch {
	case before.Terminal():
		return models.OutcomeIgnored
	case snap.State == gate.Authenticated:
		return models.OutcomeAuthenticated
	case snap.State == gate.Blocked:
		return models.OutcomeLockedOut
	default:
		return models.OutcomeInvalidCredential
	}
}

func PostGate(c *fiber.Ctx) error {
	module, ok := protectedView(c)
	if !ok {
		return middlewares.SendError(c, fiber.StatusNotFound, "La vista solicitada no tiene acceso protegido.")
	}
	var req requests.GateRequest
	if err := c.BodyParser(&req); err != nil {
		return middlewares.SendError(c, fiber.StatusBadRequest, "No se pudo procesar la solicitud.")
	}
	var (
		before gate.State
		snap   gate.Snapshot
	)
	objects.Gates.WithGate(middlewares.SessionID(c), module.ID, func(g *gate.Gate) {
		before = g.State()
		snap = g.Submit(req.Secret)
	})
	middlewares.Audit(c, module.ID, submitOutcome(before, snap), snap)
	if utils.WantsJSON(c) {
		return gateJSON(c, module, snap)
	}
	return c.Redirect(utils.ViewURL(module.ID), fiber.StatusSeeOther)
}

func PostReveal(c *fiber.Ctx) error {
	return toggleReveal(c, true)
}

func PostHide(c *fiber.Ctx) error {
	return toggleReveal(c, false)
}

// toggleReveal flips the visibility of the typed secret. The text typed so
// far travels back to the gate page through flash data.
func toggleReveal(c *fiber.Ctx, revealed bool) error {
	module, ok := protectedView(c)
	if !ok {
		return middlewares.SendError(c, fiber.StatusNotFound, "La vista solicitada no tiene acceso protegido.")
	}
	var req requests.GateRequest
	_ = c.BodyParser(&req)
	var snap gate.Snapshot
	objects.Gates.WithGate(middlewares.SessionID(c), module.ID, func(g *gate.Gate) {
		if revealed {
			g.Reveal()
		} else {
			g.Hide()
		}
		snap = g.Snapshot()
	})
	if utils.WantsJSON(c) {
		return gateJSON(c, module, snap)
	}
	return flash.WithData(c, fiber.Map{middlewares.SecretKey: req.Secret}).
		Redirect(utils.ViewURL(module.ID), fiber.StatusSeeOther)
}

func gateJSON(c *fiber.Ctx, module views.Module, snap gate.Snapshot) error {
	status := fiber.StatusOK
	switch snap.State {
	case gate.Blocked:
		status = fiber.StatusForbidden
	case gate.Locked:
		if snap.Reason != nil {
			status = fiber.StatusUnauthorized
		}
	}
	body := fiber.Map{
		"success": snap.State == gate.Authenticated,
		"view":    module.ID,
		"gate":    snap,
	}
	if msg := views.GateMessage(snap); msg != "" {
		body["error"] = msg
	}
	return c.Status(status).JSON(body)
}
