package views

// Style is a resolved presentation for an enumerated value.
type Style struct {
	Label     string
	Class     string
	Icon      string
	IconClass string
}

type styleTable struct {
	entries  map[string]Style
	fallback Style
}

func (t styleTable) of(key string) Style {
	if s, ok := t.entries[key]; ok {
		return s
	}
	return t.fallback
}

var (
	trendStyles = styleTable{
		entries: map[string]Style{
			"up":   {Class: "text-success", Icon: "trending-up", IconClass: "text-success"},
			"down": {Class: "text-warning", Icon: "trending-down", IconClass: "text-warning"},
		},
		fallback: Style{Class: "text-gray-500", Icon: "activity", IconClass: "text-gray-400"},
	}
	kpiStatusStyles = styleTable{
		entries: map[string]Style{
			"success": {Class: "text-success"},
			"warning": {Class: "text-warning"},
			"danger":  {Class: "text-red-600"},
		},
		fallback: Style{Class: "text-gray-700"},
	}
	alertSeverityStyles = styleTable{
		entries: map[string]Style{
			"critical": {Label: "Crítica", Class: "border-red-500 bg-red-50", Icon: "alert-circle", IconClass: "text-red-500"},
			"high":     {Label: "Alta", Class: "border-orange-500 bg-orange-50", Icon: "alert-circle", IconClass: "text-orange-500"},
			"medium":   {Label: "Media", Class: "border-yellow-500 bg-yellow-50", Icon: "clock", IconClass: "text-yellow-500"},
			"low":      {Label: "Baja", Class: "border-blue-500 bg-blue-50", Icon: "check-circle", IconClass: "text-blue-500"},
		},
		fallback: Style{Class: "border-gray-300 bg-gray-50", Icon: "check-circle", IconClass: "text-blue-500"},
	}
	routeStatusStyles = styleTable{
		entries: map[string]Style{
			"active":    {Label: "En Ruta", Class: "bg-green-100 text-green-800"},
			"planned":   {Label: "Planificada", Class: "bg-blue-100 text-blue-800"},
			"delayed":   {Label: "Retrasada", Class: "bg-yellow-100 text-yellow-800"},
			"completed": {Label: "Completada", Class: "bg-gray-100 text-gray-800"},
		},
		fallback: Style{Label: "Completada", Class: "bg-gray-100 text-gray-800"},
	}
	locationTypeStyles = styleTable{
		entries: map[string]Style{
			"headquarters": {Label: "Sede Central", Class: "#2563eb"},
			"port":         {Label: "Puerto", Class: "#16a34a"},
			"border":       {Label: "Frontera", Class: "#ea580c"},
			"warehouse":    {Label: "Almacén", Class: "#9333ea"},
		},
		fallback: Style{Label: "Cliente", Class: "#4b5563"},
	}
	moduleStatusStyles = styleTable{
		entries: map[string]Style{
			"active":       {Label: "Activo", Class: "bg-green-100 text-green-600", Icon: "check-circle", IconClass: "text-green-500"},
			"implementing": {Label: "Implementando", Class: "bg-yellow-100 text-yellow-600", Icon: "clock", IconClass: "text-yellow-500"},
			"inactive":     {Label: "Inactivo", Class: "bg-gray-100 text-gray-600", Icon: "alert-triangle", IconClass: "text-gray-400"},
		},
		fallback: Style{Label: "Inactivo", Class: "bg-gray-100 text-gray-600", Icon: "alert-triangle", IconClass: "text-gray-400"},
	}
	moduleNodeColors = map[string]string{
		"active":       "#22c55e",
		"implementing": "#eab308",
	}
	moduleIcons = map[string]string{
		"ai-routes":      "route",
		"ai-customs":     "file-check",
		"ai-demand":      "trending-up",
		"ai-maintenance": "brain",
		"ai-pricing":     "dollar-sign",
		"ai-security":    "shield",
	}
	integrationStyles = styleTable{
		entries: map[string]Style{
			"active":      {Label: "Activo", Class: "bg-green-100 text-green-700"},
			"beta":        {Label: "Beta", Class: "bg-yellow-100 text-yellow-700"},
			"development": {Label: "Desarrollo", Class: "bg-blue-100 text-blue-700"},
		},
		fallback: Style{Label: "Planificado", Class: "bg-gray-100 text-gray-700"},
	}
	impactStyles = styleTable{
		entries: map[string]Style{
			"high":   {Label: "Alto", Class: "text-red-600"},
			"medium": {Label: "Medio", Class: "text-yellow-600"},
			"low":    {Label: "Bajo", Class: "text-green-600"},
		},
		fallback: Style{Class: "text-gray-600"},
	}
	levelBadgeStyles = styleTable{
		entries: map[string]Style{
			"Alta":  {Class: "bg-red-100 text-red-800"},
			"Alto":  {Class: "bg-red-100 text-red-800"},
			"Media": {Class: "bg-yellow-100 text-yellow-800"},
			"Medio": {Class: "bg-yellow-100 text-yellow-800"},
		},
		fallback: Style{Class: "bg-green-100 text-green-800"},
	}
	documentStatusStyles = styleTable{
		entries: map[string]Style{
			"approved":   {Label: "Aprobado", Class: "bg-green-100 text-green-800", Icon: "check-circle", IconClass: "text-green-500"},
			"processing": {Label: "Procesando", Class: "bg-yellow-100 text-yellow-800", Icon: "clock", IconClass: "text-yellow-500"},
			"pending":    {Label: "Pendiente", Class: "bg-blue-100 text-blue-800", Icon: "alert-triangle", IconClass: "text-blue-500"},
			"rejected":   {Label: "Rechazado", Class: "bg-red-100 text-red-800", Icon: "alert-triangle", IconClass: "text-red-500"},
		},
		fallback: Style{Label: "Rechazado", Class: "bg-gray-100 text-gray-800", Icon: "file-check", IconClass: "text-gray-500"},
	}
	vehicleStatusStyles = styleTable{
		entries: map[string]Style{
			"in-transit":  {Label: "En Ruta", Class: "bg-green-100 text-green-800", Icon: "navigation", IconClass: "text-green-600"},
			"available":   {Label: "Disponible", Class: "bg-blue-100 text-blue-800", Icon: "truck", IconClass: "text-blue-600"},
			"maintenance": {Label: "Mantenimiento", Class: "bg-yellow-100 text-yellow-800", Icon: "activity", IconClass: "text-yellow-600"},
			"offline":     {Label: "Fuera de Servicio", Class: "bg-red-100 text-red-800", Icon: "alert-triangle", IconClass: "text-red-600"},
		},
		fallback: Style{Label: "Fuera de Servicio", Class: "bg-gray-100 text-gray-800", Icon: "truck", IconClass: "text-gray-600"},
	}
	protocolSeverityStyles = styleTable{
		entries: map[string]Style{
			"critical": {Label: "Crítico", Class: "bg-red-100 text-red-800"},
			"high":     {Label: "Alto", Class: "bg-orange-100 text-orange-800"},
		},
		fallback: Style{Label: "Medio", Class: "bg-yellow-100 text-yellow-800"},
	}
	systemStatusStyles = styleTable{
		entries: map[string]Style{
			"operational": {Class: "border-green-200 bg-green-50 text-green-800", IconClass: "bg-green-500"},
		},
		fallback: Style{Class: "border-yellow-200 bg-yellow-50 text-yellow-800", IconClass: "bg-yellow-500"},
	}
	phaseStatusStyles = styleTable{
		entries: map[string]Style{
			"completed":   {Label: "Completada", Icon: "check-circle", IconClass: "text-green-600"},
			"in-progress": {Label: "En Progreso", Icon: "clock", IconClass: "text-blue-600"},
		},
		fallback: Style{Label: "Pendiente", Icon: "alert-triangle", IconClass: "text-gray-400"},
	}
	techStatusStyles = styleTable{
		entries: map[string]Style{
			"current":    {Label: "Actual", Class: "bg-green-100 text-green-800"},
			"planned":    {Label: "Planificado", Class: "bg-blue-100 text-blue-800"},
			"evaluating": {Label: "Evaluando", Class: "bg-yellow-100 text-yellow-800"},
		},
		fallback: Style{Label: "Evaluando", Class: "bg-gray-100 text-gray-800"},
	}
	complexityStyles = styleTable{
		entries: map[string]Style{
			"High":   {Label: "Alta", Class: "text-red-600"},
			"Medium": {Label: "Media", Class: "text-yellow-600"},
			"Low":    {Label: "Baja", Class: "text-green-600"},
		},
		fallback: Style{Label: "Baja", Class: "text-gray-600"},
	}
	routeListStyles = styleTable{
		entries: map[string]Style{
			"active":  {Label: "Activa", Class: "bg-green-100 text-green-700"},
			"planned": {Label: "Planificada", Class: "bg-blue-100 text-blue-700"},
		},
		fallback: Style{Label: "Retrasada", Class: "bg-yellow-100 text-yellow-700"},
	}
	integrationPointStyles = styleTable{
		entries: map[string]Style{
			"active":  {Label: "Activo", Class: "bg-green-100 text-green-800"},
			"planned": {Label: "Planificado", Class: "bg-blue-100 text-blue-800"},
		},
		fallback: Style{Label: "Planificado", Class: "bg-gray-100 text-gray-800"},
	}
	toneClasses = map[string]string{
		"blue":   "border-blue-200 bg-blue-50 text-blue-700",
		"green":  "border-green-200 bg-green-50 text-green-700",
		"orange": "border-orange-200 bg-orange-50 text-orange-700",
		"purple": "border-purple-200 bg-purple-50 text-purple-700",
		"yellow": "border-yellow-200 bg-yellow-50 text-yellow-700",
	}
)

type CapacityAction struct {
	Label      string
	BarClass   string
	BadgeClass string
}

// capacityAction maps a capacity utilisation percentage to its recommended action.
func capacityAction(utilization float64) CapacityAction {
	switch {
	case utilization > 90:
		return CapacityAction{Label: "Ampliar Urgente", BarClass: "bg-red-500", BadgeClass: "bg-red-100 text-red-800"}
	case utilization > 80:
		return CapacityAction{Label: "Planificar Expansión", BarClass: "bg-yellow-500", BadgeClass: "bg-yellow-100 text-yellow-800"}
	default:
		return CapacityAction{Label: "Capacidad Adecuada", BarClass: "bg-green-500", BadgeClass: "bg-green-100 text-green-800"}
	}
}

func tone(name string) string {
	if c, ok := toneClasses[name]; ok {
		return c
	}
	return "border-gray-200 bg-gray-50 text-gray-700"
}

// accent returns the text and bar classes for a named colour.
func accent(color string) (text, bar string) {
	switch color {
	case "blue", "green", "purple", "orange", "indigo", "red", "yellow":
		return "text-" + color + "-600", "bg-" + color + "-600"
	}
	return "text-gray-600", "bg-gray-600"
}
