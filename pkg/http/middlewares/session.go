package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/utils"
)

const sessionKey = "session_id"

func sessionName(cfg *libs.Config) string {
	if cfg.Gate.SessionName != "" {
		return cfg.Gate.SessionName
	}
	return utils.DefaultSessionName
}

// Session resolves the browser session from its encrypted cookie. A missing,
// unreadable or expired cookie starts a new session with fresh gates. The
// cookie is reissued on every request so an active session does not expire.
// A token that cannot be issued is a server error, never a redirect: every
// page sits behind this middleware.
func Session(cfg *libs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := sessionName(cfg)
		sid, err := libs.ParseSessionToken(c.Cookies(name), cfg.Gate.TokenSecret)
		if err != nil {
			sid = libs.NewSessionID()
		}
		tok, err := libs.IssueSessionToken(sid, cfg.Gate.SessionTTL, cfg.Gate.TokenSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to start session: "+err.Error())
		}
		c.Cookie(utils.GetCookie(cfg.HTTPS, cfg.Env, name, tok, int(cfg.Gate.SessionTTL.Seconds())))
		c.Locals(sessionKey, sid)
		return c.Next()
	}
}

// SessionID returns the browser session resolved by Session.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionKey).(string)
	return sid
}

// ExpireSession tells the browser to drop its session cookie.
func ExpireSession(c *fiber.Ctx, cfg *libs.Config) {
	c.Cookie(utils.GetCookie(cfg.HTTPS, cfg.Env, sessionName(cfg), "", -1))
}
