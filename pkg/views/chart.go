package views

import (
	"math"
	"strconv"
	"strings"

	"github.com/oarkflow/zeit/pkg/models"
)

const (
	chartWidth  = 600.0
	chartHeight = 260.0
	padLeft     = 44.0
	padRight    = 12.0
	padTop      = 12.0
	padBottom   = 28.0
	yTickCount  = 4
	pieRadius   = 100.0
)

type Tick struct {
	Y     float64
	Label string
}

type AxisLabel struct {
	X     float64
	Label string
}

type LegendEntry struct {
	Name   string
	Color  string
	Dashed bool
}

// Frame is the plot area shared by line and bar charts, in SVG user units.
type Frame struct {
	Width   float64
	Height  float64
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
	YTicks  []Tick
	XLabels []AxisLabel
	Legend  []LegendEntry
}

// Series is one named value row. NaN marks a missing value.
type Series struct {
	Name   string
	Color  string
	Dashed bool
	Values []float64
}

// BandSeries shades the area between Upper and Lower.
type BandSeries struct {
	Name  string
	Color string
	Upper []float64
	Lower []float64
}

type Marker struct {
	X     float64
	Y     float64
	Value string
}

type Line struct {
	Name    string
	Color   string
	Dashed  bool
	Path    string
	Markers []Marker
}

type Band struct {
	Name  string
	Color string
	Path  string
}

type LineChart struct {
	Frame
	Bands []Band
	Lines []Line
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Series string
	Label  string
	Value  string
}

type BarChart struct {
	Frame
	Bars []Rect
}

type Slice struct {
	Path    string
	Color   string
	Label   string
	Percent string
	LabelX  float64
	LabelY  float64
}

type PieChart struct {
	Size   float64
	Slices []Slice
}

// niceStep rounds raw up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	f := raw / base
	switch {
	case f <= 1:
		f = 1
	case f <= 2:
		f = 2
	case f <= 2.5:
		f = 2.5
	case f <= 5:
		f = 5
	default:
		f = 10
	}
	return f * base
}

func maxValue(rows ...[]float64) float64 {
	m := 0.0
	for _, row := range rows {
		for _, v := range row {
			if !math.IsNaN(v) && v > m {
				m = v
			}
		}
	}
	return m
}

func newFrame(labels []string, top float64, centered bool) Frame {
	f := Frame{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   padLeft,
		Right:  chartWidth - padRight,
		Top:    padTop,
		Bottom: chartHeight - padBottom,
	}
	step := top / yTickCount
	for i := 0; i <= yTickCount; i++ {
		v := step * float64(i)
		f.YTicks = append(f.YTicks, Tick{Y: f.y(v, top), Label: Decimal(round(v, 2))})
	}
	for i, label := range labels {
		f.XLabels = append(f.XLabels, AxisLabel{X: f.x(i, len(labels), centered), Label: label})
	}
	return f
}

func (f Frame) y(v, top float64) float64 {
	if top <= 0 {
		return f.Bottom
	}
	return round(f.Bottom-(v/top)*(f.Bottom-f.Top), 2)
}

// x places the i-th of n categories. Line charts span edge to edge, bar
// charts centre each category in its slot.
func (f Frame) x(i, n int, centered bool) float64 {
	w := f.Right - f.Left
	if centered {
		slot := w / float64(n)
		return round(f.Left+slot*(float64(i)+0.5), 2)
	}
	if n <= 1 {
		return round(f.Left+w/2, 2)
	}
	return round(f.Left+w*float64(i)/float64(n-1), 2)
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func chartTop(max float64) float64 {
	step := niceStep(max / yTickCount)
	top := math.Ceil(max/step) * step
	if top <= 0 {
		top = step * yTickCount
	}
	return top
}

// NewLineChart lays out series over labels. Missing values split a line into
// separate segments and produce no marker.
func NewLineChart(labels []string, series []Series, bands ...BandSeries) LineChart {
	rows := make([][]float64, 0, len(series)+len(bands))
	for _, s := range series {
		rows = append(rows, s.Values)
	}
	for _, b := range bands {
		rows = append(rows, b.Upper, b.Lower)
	}
	top := chartTop(maxValue(rows...))
	chart := LineChart{Frame: newFrame(labels, top, false)}
	n := len(labels)

	for _, b := range bands {
		var upper, lower []string
		for i := 0; i < n && i < len(b.Upper) && i < len(b.Lower); i++ {
			if math.IsNaN(b.Upper[i]) || math.IsNaN(b.Lower[i]) {
				continue
			}
			x := coord(chart.x(i, n, false))
			upper = append(upper, x+" "+coord(chart.y(b.Upper[i], top)))
			lower = append([]string{x + " " + coord(chart.y(b.Lower[i], top))}, lower...)
		}
		if len(upper) == 0 {
			continue
		}
		path := "M " + strings.Join(upper, " L ") + " L " + strings.Join(lower, " L ") + " Z"
		chart.Bands = append(chart.Bands, Band{Name: b.Name, Color: b.Color, Path: path})
		chart.Legend = append(chart.Legend, LegendEntry{Name: b.Name, Color: b.Color})
	}

	for _, s := range series {
		line := Line{Name: s.Name, Color: s.Color, Dashed: s.Dashed}
		var b strings.Builder
		open := false
		for i := 0; i < n && i < len(s.Values); i++ {
			v := s.Values[i]
			if math.IsNaN(v) {
				open = false
				continue
			}
			x, y := chart.x(i, n, false), chart.y(v, top)
			if open {
				b.WriteString(" L ")
			} else {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString("M ")
				open = true
			}
			b.WriteString(coord(x) + " " + coord(y))
			line.Markers = append(line.Markers, Marker{X: x, Y: y, Value: Decimal(v)})
		}
		line.Path = b.String()
		chart.Lines = append(chart.Lines, line)
		chart.Legend = append(chart.Legend, LegendEntry{Name: s.Name, Color: s.Color, Dashed: s.Dashed})
	}
	return chart
}

// NewBarChart lays out grouped bars, one group per label and one bar per series.
func NewBarChart(labels []string, series ...Series) BarChart {
	rows := make([][]float64, 0, len(series))
	for _, s := range series {
		rows = append(rows, s.Values)
	}
	top := chartTop(maxValue(rows...))
	chart := BarChart{Frame: newFrame(labels, top, true)}
	n := len(labels)
	if n == 0 || len(series) == 0 {
		return chart
	}
	slot := (chart.Right - chart.Left) / float64(n)
	groupWidth := slot * 0.8
	barWidth := groupWidth / float64(len(series))
	for i := range labels {
		start := chart.Left + slot*float64(i) + (slot-groupWidth)/2
		for j, s := range series {
			if i >= len(s.Values) || math.IsNaN(s.Values[i]) {
				continue
			}
			y := chart.y(s.Values[i], top)
			chart.Bars = append(chart.Bars, Rect{
				X:      round(start+barWidth*float64(j), 2),
				Y:      y,
				Width:  round(barWidth*0.9, 2),
				Height: round(chart.Bottom-y, 2),
				Color:  s.Color,
				Series: s.Name,
				Label:  labels[i],
				Value:  Decimal(s.Values[i]),
			})
		}
	}
	for _, s := range series {
		chart.Legend = append(chart.Legend, LegendEntry{Name: s.Name, Color: s.Color})
	}
	return chart
}

// NewPieChart converts shares into arc paths centred in a square of side Size.
// Non-positive shares are skipped.
func NewPieChart(shares []models.Share) PieChart {
	size := pieRadius*2 + 40
	c := size / 2
	chart := PieChart{Size: size}
	total := 0.0
	for _, s := range shares {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 {
		return chart
	}
	angle := -math.Pi / 2
	for _, s := range shares {
		if s.Value <= 0 {
			continue
		}
		frac := s.Value / total
		sweep := frac * 2 * math.Pi
		var path string
		if frac >= 0.9999 {
			path = "M " + coord(c) + " " + coord(c-pieRadius) +
				" A " + coord(pieRadius) + " " + coord(pieRadius) + " 0 1 1 " + coord(c-0.01) + " " + coord(c-pieRadius) + " Z"
		} else {
			x1, y1 := c+pieRadius*math.Cos(angle), c+pieRadius*math.Sin(angle)
			x2, y2 := c+pieRadius*math.Cos(angle+sweep), c+pieRadius*math.Sin(angle+sweep)
			large := "0"
			if sweep > math.Pi {
				large = "1"
			}
			path = "M " + coord(c) + " " + coord(c) +
				" L " + coord(round(x1, 2)) + " " + coord(round(y1, 2)) +
				" A " + coord(pieRadius) + " " + coord(pieRadius) + " 0 " + large + " 1 " + coord(round(x2, 2)) + " " + coord(round(y2, 2)) + " Z"
		}
		mid := angle + sweep/2
		chart.Slices = append(chart.Slices, Slice{
			Path:    path,
			Color:   s.Color,
			Label:   s.Name,
			Percent: Decimal(s.Value) + "%",
			LabelX:  round(c+pieRadius*0.65*math.Cos(mid), 2),
			LabelY:  round(c+pieRadius*0.65*math.Sin(mid), 2),
		})
		angle += sweep
	}
	return chart
}
