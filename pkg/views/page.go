package views

import (
	"errors"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/gate"
)

// Builder renders one module from provider data and the request selectors.
type Builder func(contracts.Provider, Query) any

var builders = map[string]Builder{
	"dashboard":    Dashboard,
	"ai-ecosystem": Ecosystem,
	"routes":       Routes,
	"analytics":    Analytics,
	"customs":      Customs,
	"operations":   Operations,
	"methodology":  Methodology,
}

type Page struct {
	Module Module
	Menu   []MenuItem
	Data   any
}

// Build resolves id (unknown ids render the dashboard) and runs its builder.
func Build(p contracts.Provider, id string, q Query) Page {
	m := Resolve(id)
	return Page{
		Module: m,
		Menu:   Menu(m.ID),
		Data:   builders[m.ID](p, q),
	}
}

var gateMessages = []struct {
	err     error
	message string
}{
	{gate.ErrInvalidCredential, "Contraseña incorrecta. Intente nuevamente."},
	{gate.ErrLockedOut, "Demasiados intentos fallidos. Contacte al administrador."},
}

// GateMessage translates the failure carried by a snapshot for display.
func GateMessage(snap gate.Snapshot) string {
	for _, m := range gateMessages {
		if errors.Is(snap.Reason, m.err) || snap.LastError == m.err.Error() {
			return m.message
		}
	}
	return snap.LastError
}

// GateView is the model for the locked and blocked gate pages.
type GateView struct {
	ViewID        string
	Title         string
	Description   string
	Blocked       bool
	Error         string
	Remaining     int
	ShowRemaining bool
	Revealed      bool
	Input         string
	SubmitURL     string
	RevealURL     string
	HideURL       string
}

// NewGateView builds the gate page. input is the text typed before a
// reveal or hide round trip, empty after a submission.
func NewGateView(viewID string, snap gate.Snapshot, input string) GateView {
	base := "/views/" + viewID + "/gate"
	return GateView{
		ViewID:        viewID,
		Title:         snap.Title,
		Description:   snap.Description,
		Blocked:       snap.State == gate.Blocked,
		Error:         GateMessage(snap),
		Remaining:     snap.RemainingAttempts,
		ShowRemaining: snap.AttemptCount > 0 && snap.AttemptCount < snap.MaxAttempts,
		Revealed:      snap.Revealed,
		Input:         input,
		SubmitURL:     base,
		RevealURL:     base + "/reveal",
		HideURL:       base + "/hide",
	}
}
