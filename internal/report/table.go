// Package report renders plain-text tables for CLI listings.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table formats headers and rows into aligned lines. Columns listed in
// rightAlignCols are padded on the left.
func Table(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			if w := runewidth.StringWidth(cell(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell(row, i), widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
