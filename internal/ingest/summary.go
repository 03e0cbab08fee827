package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Render writes the per-directory file counts as a table, followed by a
// line with the insert totals.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Constituencies", "Files"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	files := 0
	for _, sd := range r.Subdirs {
		table.Append([]string{sd.Name, strconv.Itoa(sd.Files)})
		files += sd.Files
	}
	table.SetFooter([]string{"Total", strconv.Itoa(files)})
	table.Render()
	fmt.Fprintf(w, "Documents inserted: %d, skipped: %d\n", r.Load.Inserted, r.Load.Skipped)
}
