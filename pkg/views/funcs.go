package views

import "strings"

// FuncMap holds the formatting helpers available to the dashboard templates.
func FuncMap() map[string]any {
	return map[string]any{
		"number":   Number,
		"decimal":  Decimal,
		"fixed":    Fixed,
		"date":     Date,
		"datetime": DateTime,
		"clock":    Clock,
		"join":     strings.Join,
		"upper":    strings.ToUpper,
		"add":      func(a, b int) int { return a + b },
	}
}
