package responses

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

func Render(c *fiber.Ctx, template string, data any, layouts ...string) error {
	if c == nil {
		return fiber.ErrBadRequest
	}
	if template == "" {
		return c.JSON(data)
	}
	layout := objects.Layout
	if len(layouts) > 0 {
		layout = layouts[0]
	}
	layouts = nil
	if layout != "" {
		layouts = []string{layout}
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	if objects.ViewEngine == nil {
		return c.Render(template, data, layouts...)
	}

	return objects.ViewEngine.Render(c.Response().BodyWriter(), template, data, layouts...)
}

// Chrome is the layout data shared by every page: brand, menu and header.
type Chrome struct {
	AppName   string
	UserName  string
	UserRole  string
	Module    views.Module
	Menu      []views.MenuItem
	URIs      map[string]string
	RequestID string
	Year      int
}

func NewChrome(c *fiber.Ctx, module views.Module) Chrome {
	chrome := Chrome{
		AppName:  objects.Identity.AppName,
		UserName: objects.Identity.UserName,
		UserRole: objects.Identity.UserRole,
		Module:   module,
		Menu:     views.Menu(module.ID),
		URIs:     utils.GetURIs(),
		Year:     time.Now().Year(),
	}
	if chrome.AppName == "" {
		chrome.AppName = "Zeit AI Logistics"
	}
	if id, ok := c.Locals("requestid").(string); ok {
		chrome.RequestID = id
	}
	return chrome
}

// NoCache marks the response as private to this browser session.
func NoCache(c *fiber.Ctx) {
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
}
