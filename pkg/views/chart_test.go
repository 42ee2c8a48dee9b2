package views

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/zeit/pkg/models"
)

func TestNiceStep(t *testing.T) {
	cases := map[float64]float64{
		0:     1,
		-3:    1,
		0.7:   1,
		3.1:   5,
		1.5:   2,
		2.2:   2.5,
		7:     10,
		107.5: 200,
	}
	for in, want := range cases {
		assert.InDelta(t, want, niceStep(in), 1e-9, "niceStep(%v)", in)
	}
	assert.Equal(t, 15.0, chartTop(12.4))
	assert.Equal(t, 20.0, chartTop(20))
}

func TestLineChartSplitsOnMissingValues(t *testing.T) {
	chart := NewLineChart([]string{"a", "b", "c", "d"}, []Series{
		{Name: "s", Color: "#000", Values: []float64{1, math.NaN(), 3, 4}},
	})
	require.Len(t, chart.Lines, 1)
	line := chart.Lines[0]
	assert.Equal(t, 2, strings.Count(line.Path, "M "))
	assert.Equal(t, 1, strings.Count(line.Path, " L "))
	assert.Len(t, line.Markers, 3)
	assert.Len(t, chart.XLabels, 4)
	assert.Equal(t, chart.Left, chart.XLabels[0].X)
	assert.Equal(t, chart.Right, chart.XLabels[3].X)
	require.Len(t, chart.YTicks, yTickCount+1)
	assert.Equal(t, chart.Bottom, chart.YTicks[0].Y)
	assert.Equal(t, chart.Top, chart.YTicks[yTickCount].Y)
}

func TestLineChartBand(t *testing.T) {
	chart := NewLineChart([]string{"a", "b"},
		[]Series{{Name: "p", Values: []float64{2, 3}}},
		BandSeries{Name: "band", Color: "#eee", Upper: []float64{4, 5}, Lower: []float64{1, 2}},
	)
	require.Len(t, chart.Bands, 1)
	path := chart.Bands[0].Path
	assert.True(t, strings.HasPrefix(path, "M "))
	assert.True(t, strings.HasSuffix(path, " Z"))
	assert.Equal(t, 3, strings.Count(path, " L "))
	require.Len(t, chart.Legend, 2)
	assert.Equal(t, "band", chart.Legend[0].Name)
}

func TestBarChartGeometry(t *testing.T) {
	chart := NewBarChart([]string{"a", "b"}, Series{Name: "s", Color: "#111", Values: []float64{10, 20}})
	require.Len(t, chart.Bars, 2)
	tallest := chart.Bars[1]
	assert.Equal(t, chart.Top, tallest.Y)
	assert.Equal(t, chart.Bottom-chart.Top, tallest.Height)
	assert.Equal(t, "20", tallest.Value)
	assert.Less(t, chart.Bars[0].X, chart.Bars[1].X)
	assert.InDelta(t, tallest.Height/2, chart.Bars[0].Height, 0.01)
}

func TestBarChartEmpty(t *testing.T) {
	chart := NewBarChart(nil)
	assert.Empty(t, chart.Bars)
	assert.Len(t, chart.YTicks, yTickCount+1)
}

func TestPieChart(t *testing.T) {
	half := NewPieChart([]models.Share{{Name: "a", Value: 50, Color: "#a"}, {Name: "b", Value: 50, Color: "#b"}})
	require.Len(t, half.Slices, 2)
	assert.Equal(t, "M 120 120 L 120 20 A 100 100 0 0 1 120 220 Z", half.Slices[0].Path)
	assert.Equal(t, "50%", half.Slices[0].Percent)

	full := NewPieChart([]models.Share{{Name: "only", Value: 10}})
	require.Len(t, full.Slices, 1)
	assert.Contains(t, full.Slices[0].Path, " 0 1 1 ")

	assert.Empty(t, NewPieChart([]models.Share{{Name: "zero", Value: 0}}).Slices)
	assert.Empty(t, NewPieChart(nil).Slices)
}
