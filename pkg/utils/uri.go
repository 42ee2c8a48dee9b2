package utils

var (
	LandingURI = "/"
	HealthURI  = "/health"
	ViewURI    = "/views/:id"
	GateURI    = "/views/:id/gate"
	RevealURI  = "/views/:id/gate/reveal"
	HideURI    = "/views/:id/gate/hide"
	LogoutURI  = "/logout"
	AuditURI   = "/api/audit"
	StaticURI  = "/static"
)

var (
	GateLockedTemplate  = "gate/locked"
	GateBlockedTemplate = "gate/blocked"
	ErrorTemplate       = "error"
)

// ViewURL is the page address of a dashboard module.
func ViewURL(id string) string {
	return "/views/" + id
}

func GetURIs() map[string]string {
	return map[string]string{
		"Landing": LandingURI,
		"Health":  HealthURI,
		"Logout":  LogoutURI,
		"Audit":   AuditURI,
		"Static":  StaticURI,
	}
}

var DefaultSessionName = "zeit_session"
