package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/http/responses"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

func HealthCheck(c *fiber.Ctx) error {
	sessions := 0
	if objects.Gates != nil {
		sessions = objects.Gates.SessionCount()
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": sessions,
	})
}

func LandingPage(c *fiber.Ctx) error {
	return c.Redirect(utils.ViewURL(views.DefaultModule), fiber.StatusFound)
}

// ViewPage renders a dashboard module. Unknown ids render the executive
// dashboard. Protected views only reach this handler through Guard.
func ViewPage(c *fiber.Ctx) error {
	page := views.Build(objects.Data, c.Params("id"), views.Query(c.Queries()))
	if utils.WantsJSON(c) {
		return c.JSON(fiber.Map{
			"view": page.Module.ID,
			"name": page.Module.Name,
			"data": page.Data,
		})
	}
	return responses.Render(c, page.Module.Template, fiber.Map{
		"Title":  page.Module.Name,
		"Chrome": responses.NewChrome(c, page.Module),
		"Page":   page.Data,
	})
}
