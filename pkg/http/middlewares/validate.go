package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var suspiciousPatterns = []string{
	"../", "..\\", ".env", "/etc/", "/proc/", "/sys/",
	"<script", "javascript:", "vbscript:", "data:",
	"union select", "drop table", "truncate", "delete from",
}

func containsSuspiciousPatterns(path string) bool {
	lowerPath := strings.ToLower(path)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}
	return false
}

// ValidateRequest rejects paths carrying common attack patterns and POST
// bodies in a content type the handlers cannot parse.
func ValidateRequest(c *fiber.Ctx) error {
	if containsSuspiciousPatterns(c.Path()) {
		return fiber.NewError(fiber.StatusBadRequest, "suspicious patterns detected in request path")
	}
	if c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		contentType := c.Get(fiber.HeaderContentType)
		if !strings.Contains(contentType, fiber.MIMEApplicationJSON) &&
			!strings.Contains(contentType, fiber.MIMEApplicationForm) &&
			!strings.Contains(contentType, fiber.MIMEMultipartForm) {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "unsupported content type: "+contentType)
		}
	}
	return c.Next()
}
