package views

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Number formats v with es-MX digit grouping, e.g. 450000 -> "450,000".
func Number(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%v", v)
}

// Decimal trims trailing zeros: 18.50 -> "18.5", 22.0 -> "22".
func Decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func Fixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func DateTime(t time.Time) string {
	return t.Format("2/1/2006, 15:04:05")
}

func Date(t time.Time) string {
	return t.Format("2/1/2006")
}

func Clock(t time.Time) string {
	return t.Format("15:04")
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
