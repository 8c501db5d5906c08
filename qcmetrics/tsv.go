package qcmetrics

import (
	"context"
	"io"

	"github.com/grailbio/base/tsv"
)

// WriteTSV writes t as a tab-separated table with a header row. Absent
// fields are written as empty cells.
func WriteTSV(w io.Writer, t *Table) error {
	tw := tsv.NewWriter(w)
	for _, c := range t.Columns {
		tw.WriteString(c)
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, r := range t.Records {
		tw.WriteString(r.Sample)
		for _, c := range t.Columns[1:] {
			tw.WriteString(r.Cell(c).String())
		}
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteTSVFile writes t to path with WriteTSV.
func WriteTSVFile(ctx context.Context, path string, t *Table) error {
	return writeOutput(ctx, path, func(w io.Writer) error { return WriteTSV(w, t) })
}
