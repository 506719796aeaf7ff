package polarbear

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintSeries renders the series to w as an aligned text table with one row
// per labelled value.
func PrintSeries[L, V any](w io.Writer, s *Series[L, V]) error {
	values, err := s.Values()
	if err != nil {
		return err
	}

	pw := &printWriter{writer: w}
	table := newTable(pw, []string{"", "values"})
	for i, label := range s.Labels() {
		table.Append([]string{formatValue(label), formatValue(values[i])})
	}
	table.Render()
	return pw.err
}

// PrintFrame renders the frame to w as an aligned text table with the label
// in the first column and one column per frame column.
func PrintFrame[L any](w io.Writer, f *Frame[L]) error {
	header := make([]string, 1, 1+len(f.columns))
	cells := make([][]string, len(f.columns))

	for i, col := range f.columns {
		strings, err := col.Strings()
		if err != nil {
			return err
		}
		header = append(header, col.Name())
		cells[i] = strings
	}

	pw := &printWriter{writer: w}
	table := newTable(pw, header)
	for i, label := range f.index.Labels() {
		row := make([]string, 1, len(header))
		row[0] = formatValue(label)
		for _, col := range cells {
			row = append(row, col[i])
		}
		table.Append(row)
	}
	table.Render()
	return pw.err
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

// printWriter captures the first write error so that rendering helpers which
// do not propagate errors can still report them.
type printWriter struct {
	writer io.Writer
	err    error
}

func (w *printWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.writer.Write(b)
	w.err = err
	return n, err
}
