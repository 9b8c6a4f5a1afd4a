package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/san-kum/ldsim/internal/descriptor"
)

// SVG writes the field as a raster of colored cells, one per grid point
// of an nx-by-ny mesh, with the second axis pointing up.
func SVG(path string, field *descriptor.Field, nx, ny int, cellSize float64) error {
	s, err := FieldToSVG(field, nx, ny, cellSize)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

func FieldToSVG(field *descriptor.Field, nx, ny int, cellSize float64) (string, error) {
	if nx*ny != field.Len() {
		return "", fmt.Errorf("export: %dx%d mesh does not match %d records", nx, ny, field.Len())
	}
	if cellSize <= 0 {
		cellSize = 4
	}

	totals := field.Totals()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range totals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	width := float64(nx) * cellSize
	height := float64(ny) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			v := totals[ix*ny+iy]
			t := 0.0
			if hi > lo && !math.IsNaN(v) && !math.IsInf(v, 0) {
				t = (v - lo) / (hi - lo)
			}
			x := float64(ix) * cellSize
			y := float64(ny-1-iy) * cellSize
			sb.WriteString(fmt.Sprintf("<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"/>\n",
				x, y, cellSize, cellSize, rampColor(t)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// rampColor maps t in [0,1] onto a blue-to-red heat ramp.
func rampColor(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := int(255 * math.Min(1, 2*t))
	b := int(255 * math.Min(1, 2*(1-t)))
	g := int(255 * (1 - math.Abs(2*t-1)))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
