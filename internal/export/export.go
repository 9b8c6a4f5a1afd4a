// Package export writes computed descriptor fields to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/ldsim/internal/descriptor"
	"github.com/san-kum/ldsim/internal/grid"
)

// CSV writes one row per grid point: the initial condition coordinates
// followed by the branch values present in the field. Rows follow grid
// order, so the file is index-aligned with the input grid.
func CSV(path string, g grid.Grid, field *descriptor.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, g, field)
}

func WriteCSV(w io.Writer, g grid.Grid, field *descriptor.Field) error {
	if g.Len() != field.Len() {
		return fmt.Errorf("export: grid has %d points but field has %d records", g.Len(), field.Len())
	}

	cw := csv.NewWriter(w)

	dim := 0
	if g.Len() > 0 {
		dim = len(g.At(0))
	}

	header := make([]string, 0, dim+2)
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if field.Direction == descriptor.Forward || field.Direction == descriptor.Both {
		header = append(header, "lfwd")
	}
	if field.Direction == descriptor.Backward || field.Direction == descriptor.Both {
		header = append(header, "lbwd")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i := 0; i < g.Len(); i++ {
		row = row[:0]
		for _, v := range g.At(i) {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec := field.Records[i]
		if rec.HasFwd {
			row = append(row, strconv.FormatFloat(rec.LFwd, 'g', -1, 64))
		}
		if rec.HasBwd {
			row = append(row, strconv.FormatFloat(rec.LBwd, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
