package middlewares

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/oarkflow/zeit/pkg/utils"
)

const NoticeKey = "notice"

// SendError answers JSON clients with an error body and sends browsers back
// to the page they came from with the message flashed.
func SendError(c *fiber.Ctx, status int, message string) error {
	if utils.WantsJSON(c) {
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"status":  status,
		})
	}
	back := utils.LandingURI
	if ref, err := url.Parse(c.Get(fiber.HeaderReferer)); err == nil && ref.Path != "" && !utils.IsAssetURI(ref.Path) {
		back = ref.RequestURI()
	}
	return flash.WithData(c, fiber.Map{NoticeKey: message}).Redirect(back, fiber.StatusSeeOther)
}
