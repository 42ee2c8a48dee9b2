package requests

// GateRequest carries the secret typed on a gate page.
type GateRequest struct {
	Secret string `json:"secret" form:"secret"`
}
