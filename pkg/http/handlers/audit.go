package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/http/middlewares"
	"github.com/oarkflow/zeit/pkg/http/responses"
	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/storage"
	"github.com/oarkflow/zeit/pkg/utils"
)

// AuditLog lists the most recent gate events, newest first.
func AuditLog(c *fiber.Ctx) error {
	if objects.Store == nil {
		return middlewares.SendError(c, fiber.StatusServiceUnavailable, "audit storage is not configured")
	}
	limit := c.QueryInt("limit", storage.DefaultRecentLimit)
	events, err := objects.Store.RecentGateEvents(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to load audit events",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"events": events,
		"count":  len(events),
	})
}

// PostLogout forgets every gate of the session and drops the cookie. The
// next request starts a fresh session with all protected views locked.
func PostLogout(cfg *libs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		objects.Gates.EndSession(middlewares.SessionID(c))
		middlewares.ExpireSession(c, cfg)
		responses.NoCache(c)
		if utils.WantsJSON(c) {
			return c.JSON(fiber.Map{"success": true})
		}
		return c.Redirect(utils.LandingURI, fiber.StatusSeeOther)
	}
}

// NotFound answers unmatched routes with the error page.
func NotFound(c *fiber.Ctx) error {
	return renderErrorPage(c, fiber.StatusNotFound, "Página no encontrada",
		"La página solicitada no existe.",
		"Verifique la dirección o regrese al panel principal.",
		fmt.Sprintf("no route for %s %s", c.Method(), c.Path()), utils.LandingURI)
}
