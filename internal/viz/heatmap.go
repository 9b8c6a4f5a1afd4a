// Package viz renders descriptor fields in the terminal.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ldsim/internal/descriptor"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	// Cold-to-hot ramp over ANSI 256 colors.
	ramp = []string{"17", "18", "19", "26", "32", "38", "44", "50", "86", "120", "190", "220", "208", "196"}
)

// Heatmap renders a field computed over an nx-by-ny mesh. The mesh is
// row-major with the second axis varying fastest, so record (ix, iy)
// lives at index ix*ny+iy. Rows are printed with the second axis pointing
// up, matching the usual phase-portrait orientation.
func Heatmap(field *descriptor.Field, nx, ny int) string {
	if nx*ny != field.Len() {
		return fmt.Sprintf("heatmap: %dx%d mesh does not match %d records", nx, ny, field.Len())
	}

	totals := field.Totals()
	lo, hi := bounds(totals)

	var sb strings.Builder
	for iy := ny - 1; iy >= 0; iy-- {
		for ix := 0; ix < nx; ix++ {
			v := totals[ix*ny+iy]
			sb.WriteString(cell(v, lo, hi))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(labelStyle.Render("min "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.4g", lo)))
	sb.WriteString(labelStyle.Render("  max "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.4g", hi)))
	sb.WriteByte('\n')

	return sb.String()
}

func cell(v, lo, hi float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("??")
	}

	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	idx := int(t * float64(len(ramp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ramp[idx])).Render("██")
}

func bounds(vals []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
