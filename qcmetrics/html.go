package qcmetrics

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportTitle is the title and heading of the HTML report.
const ReportTitle = "RNA Methylation Pipeline QC Summary"

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <title>` + ReportTitle + `</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        .header { background-color: #4CAF50; color: white; padding: 10px; margin-bottom: 20px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>` + ReportTitle + `</h1>
    </div>
    <table>
        <tr>
`

const htmlFooter = `        </table>
</body>
</html>
`

// numberPrinter formats numbers with thousands separators.
var numberPrinter = message.NewPrinter(language.English)

// FormatCell returns the HTML text of a value in the given column:
// integers get thousands separators; "_rate" columns get two decimals;
// other floats get both; NA and absent values are written as is.
func FormatCell(column string, v Value) string {
	switch v.Kind {
	case Int:
		return numberPrinter.Sprintf("%d", v.Int)
	case Float:
		if strings.HasSuffix(column, "_rate") {
			return strconv.FormatFloat(v.Float, 'f', 2, 64)
		}
		return numberPrinter.Sprintf("%.2f", v.Float)
	}
	return v.String()
}

// WriteHTML writes t as a static HTML report with one table.
//
// Sample IDs are written without HTML escaping. Inputs are trusted
// pipeline outputs whose names come from file names.
func WriteHTML(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	e := errors.Once{}
	write := func(s string) {
		_, err := bw.WriteString(s)
		e.Set(err)
	}
	write(htmlHeader)
	write("<th>" + strings.Join(t.Columns, "</th><th>") + "</th></tr>")
	for _, r := range t.Records {
		write("<tr>")
		for _, c := range t.Columns {
			text := r.Sample
			if c != SampleColumn {
				text = FormatCell(c, r.Cell(c))
			}
			write("<td>" + text + "</td>")
		}
		write("</tr>")
	}
	write(htmlFooter)
	e.Set(bw.Flush())
	return e.Err()
}

// WriteHTMLFile writes t to path with WriteHTML.
func WriteHTMLFile(ctx context.Context, path string, t *Table) error {
	return writeOutput(ctx, path, func(w io.Writer) error { return WriteHTML(w, t) })
}
