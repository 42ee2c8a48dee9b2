package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/http/handlers"
	"github.com/oarkflow/zeit/pkg/http/middlewares"
	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/utils"
)

func Setup(prefix string, router fiber.Router, cfg *libs.Config) {
	route := router.Group(prefix)
	route.Get(utils.HealthURI, handlers.HealthCheck)
	route.Get(utils.AuditURI, handlers.AuditLog)

	session := route.Group("", middlewares.ValidateRequest, middlewares.Session(cfg))
	session.Get(utils.LandingURI, handlers.LandingPage)
	session.Get(utils.ViewURI, middlewares.Guard, handlers.ViewPage)
	session.Post(utils.LogoutURI, handlers.PostLogout(cfg))
	GateRoutes(session, cfg)
}

// GateRoutes registers the rate limited gate endpoints.
func GateRoutes(route fiber.Router, cfg *libs.Config) {
	limit := middlewares.RateLimitWithMax(cfg.RateLimitRequests, cfg.RateLimitWindow)
	route.Post(utils.GateURI, limit, handlers.PostGate)
	route.Post(utils.RevealURI, limit, handlers.PostReveal)
	route.Post(utils.HideURI, limit, handlers.PostHide)
}
