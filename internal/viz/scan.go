package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ldsim/internal/descriptor"
)

// Scan plots one mesh row of the field as a line graph: the descriptor
// total along the second axis at fixed first-axis index ix. Sharp minima
// in such scans mark stable/unstable manifold crossings.
func Scan(field *descriptor.Field, nx, ny, ix int) string {
	if nx*ny != field.Len() {
		return fmt.Sprintf("scan: %dx%d mesh does not match %d records", nx, ny, field.Len())
	}
	if ix < 0 || ix >= nx {
		return fmt.Sprintf("scan: row %d out of range 0..%d", ix, nx-1)
	}

	totals := field.Totals()
	row := make([]float64, ny)
	for iy := 0; iy < ny; iy++ {
		row[iy] = totals[ix*ny+iy]
	}

	return asciigraph.Plot(row,
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("descriptor scan, row %d/%d", ix+1, nx)),
	)
}
