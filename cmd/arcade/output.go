package main

import (
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

var (
	emph      = color.New(color.FgBlue, color.Bold).SprintFunc()
	headerFmt = color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt = color.New(color.FgYellow).SprintfFunc()
)

// newTable returns a stdout table with the CLI's header and first column
// styles.
func newTable(columns ...interface{}) table.Table {
	return table.New(columns...).
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)
}
