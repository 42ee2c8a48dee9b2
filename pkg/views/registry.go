// Package views turns fixture data into page models for the dashboard
// templates. Builders are pure: the same provider data and query always
// produce the same page.
package views

const DefaultModule = "dashboard"

type Module struct {
	ID          string
	Name        string
	Icon        string
	Template    string
	Description string
}

var modules = []Module{
	{ID: "dashboard", Name: "Dashboard Ejecutivo", Icon: "home", Template: "modules/dashboard"},
	{ID: "ai-ecosystem", Name: "Ecosistema IA", Icon: "brain", Template: "modules/ai-ecosystem"},
	{ID: "routes", Name: "Optimización de Rutas", Icon: "map", Template: "modules/routes"},
	{ID: "analytics", Name: "Análisis Predictivo", Icon: "trending-up", Template: "modules/analytics"},
	{ID: "customs", Name: "Inteligencia Aduanal", Icon: "file-check", Template: "modules/customs"},
	{ID: "operations", Name: "Torre de Control", Icon: "radio", Template: "modules/operations"},
	{ID: "methodology", Name: "Metodología", Icon: "book", Template: "modules/methodology",
		Description: "Acceso restringido a la metodología de implementación Zeit AI. Ingrese la contraseña para continuar."},
}

// Modules returns the menu in display order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

func Lookup(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Resolve returns the module for id, falling back to the executive dashboard.
func Resolve(id string) Module {
	if m, ok := Lookup(id); ok {
		return m
	}
	m, _ := Lookup(DefaultModule)
	return m
}

// Describe supplies the gate title and description for a view.
func Describe(id string) (string, string) {
	m := Resolve(id)
	description := m.Description
	if description == "" {
		description = "Ingrese la contraseña para acceder a este módulo."
	}
	return m.Name, description
}

type MenuItem struct {
	Module
	Active bool
	URL    string
}

func Menu(current string) []MenuItem {
	active := Resolve(current).ID
	items := make([]MenuItem, 0, len(modules))
	for _, m := range modules {
		items = append(items, MenuItem{Module: m, Active: m.ID == active, URL: "/views/" + m.ID})
	}
	return items
}
