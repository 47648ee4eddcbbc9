package formats

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/typelens/typelens/typelens"
)

type TableFormatter struct {
	table *tablewriter.Table
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	table := tablewriter.NewWriter(w)
	table.SetColWidth(24)
	table.SetRowLine(false)

	return &TableFormatter{
		table: table,
	}
}

func (t *TableFormatter) Format(columns []typelens.Column) error {
	t.table.SetHeader([]string{"name", "type"})
	t.table.SetAutoFormatHeaders(false)
	for i := range columns {
		t.table.Append([]string{columns[i].Name, columns[i].Type.String()})
	}
	t.table.Render()
	return nil
}
