package utils

import (
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetCookie(enableHTTPS bool, env, key, val string, maxAges ...int) *fiber.Cookie {
	maxAge := 300
	if len(maxAges) > 0 {
		maxAge = maxAges[0]
	}
	secure := enableHTTPS || env == "production"
	cookie := &fiber.Cookie{
		Name:     key,
		Value:    val,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}

// GetClientIP is the remote address, or the app's ProxyHeader value when the
// fiber config enables one for a trusted proxy. Request headers are never
// read directly.
func GetClientIP(c *fiber.Ctx) string {
	ip := c.IP()
	if comma := strings.IndexByte(ip, ','); comma > 0 {
		ip = ip[:comma]
	}
	return strings.TrimSpace(ip)
}

// WantsJSON reports whether the client prefers a JSON answer over HTML.
func WantsJSON(c *fiber.Ctx) bool {
	contentType := c.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// IsAssetURI reports whether uri points at a file rather than a page.
func IsAssetURI(uri string) bool {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	return path.Ext(uri) != ""
}
