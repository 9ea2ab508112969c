package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brytekit/internal/plan"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// actionLabel titles the operation kind; invocations only ever replay a demo.
func actionLabel(op plan.Operation) string {
	title := cases.Title(language.English)
	if op.Kind == plan.KindInvoke {
		return title.String("replay")
	}
	return title.String(string(op.Kind))
}

func renderPlanTable(ops []plan.Operation) string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{op.Slot.String(), actionLabel(op), op.Command()})
	}
	return renderTable([]string{"Slot", "Action", "Command"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
