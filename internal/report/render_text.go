// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"memspect/internal/mem"
)

func createTextReport(allTableValues []TableValues) (out []byte, err error) {
	var sb strings.Builder
	for _, tableValues := range allTableValues {
		sb.WriteString(fmt.Sprintf("%s\n", tableValues.Name))
		for range len(tableValues.Name) {
			sb.WriteString("=")
		}
		sb.WriteString("\n")
		if len(tableValues.Fields) == 0 || len(tableValues.Fields[0].Values) == 0 {
			msg := NoDataFound
			if tableValues.NoDataFound != "" {
				msg = tableValues.NoDataFound
			}
			sb.WriteString(msg + "\n\n")
			continue
		}
		if tableValues.TextTableRendererFunc != nil {
			sb.WriteString(tableValues.TextTableRendererFunc(tableValues))
		} else {
			sb.WriteString(DefaultTextTableRendererFunc(tableValues))
		}
		sb.WriteString("\n")
	}
	out = []byte(sb.String())
	return
}

func DefaultTextTableRendererFunc(tableValues TableValues) string {
	var sb strings.Builder
	if tableValues.HasRows { // print the field names as column headings across the top of the table
		// find the longest item per column -- can be the field name (column header) or a value
		maxFieldLen := make(map[string]int)
		for i, field := range tableValues.Fields {
			// the last column shouldn't occupy more space than the value
			if i == len(tableValues.Fields)-1 {
				maxFieldLen[field.Name] = 0
				continue
			}
			// other columns should occupy the larger of the field name or the longest value
			maxFieldLen[field.Name] = len(field.Name)
			for _, val := range field.Values {
				if len(val) > maxFieldLen[field.Name] {
					maxFieldLen[field.Name] = len(val)
				}
			}
		}
		columnSpacing := 3
		// print the field names
		for _, field := range tableValues.Fields {
			sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, field.Name))
		}
		sb.WriteString("\n")
		// underline the field names
		for _, field := range tableValues.Fields {
			underline := strings.Repeat("-", len(field.Name))
			sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, underline))
		}
		sb.WriteString("\n")
		// print the rows
		numRows := len(tableValues.Fields[0].Values)
		for row := range numRows {
			for fieldIdx, field := range tableValues.Fields {
				sb.WriteString(fmt.Sprintf("%-*s", maxFieldLen[field.Name]+columnSpacing, tableValues.Fields[fieldIdx].Values[row]))
			}
			sb.WriteString("\n")
		}
	} else {
		// get the longest field name to format the table nicely
		maxFieldNameLen := 0
		for _, field := range tableValues.Fields {
			if len(field.Name) > maxFieldNameLen {
				maxFieldNameLen = len(field.Name)
			}
		}
		// print the field names followed by their value
		for _, field := range tableValues.Fields {
			var value string
			if len(field.Values) > 0 {
				value = field.Values[0]
			}
			sb.WriteString(fmt.Sprintf("%s%-*s %s\n", field.Name, maxFieldNameLen-len(field.Name)+1, ":", value))
		}
	}
	return sb.String()
}

// ANSI color codes for the usage bar
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

func barColor(percent float64) string {
	if percent >= 90 {
		return colorRed
	}
	if percent >= 75 {
		return colorYellow
	}
	return colorGreen
}

// usageTextTableRenderer draws one usage bar per row of the Memory Usage
// table. Bars are colorized only when stdout is a terminal. Field order is
// fixed by memoryUsageTableValues: Kind, Total, Used, Available, Used (%).
func usageTextTableRenderer(tableValues TableValues) string {
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	var sb strings.Builder
	numRows := len(tableValues.Fields[0].Values)
	for row := range numRows {
		kind := tableValues.Fields[0].Values[row]
		percent, err := strconv.ParseFloat(tableValues.Fields[4].Values[row], 64)
		if err != nil {
			slog.Warn("unexpected usage percent format", slog.String("value", tableValues.Fields[4].Values[row]))
			sb.WriteString(DefaultTextTableRendererFunc(tableValues))
			return sb.String()
		}
		filled := mem.BarFill(percent, mem.UsageBarWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", mem.UsageBarWidth-filled)
		if colorize {
			bar = barColor(percent) + bar + colorReset
		}
		sb.WriteString(fmt.Sprintf("%-5s [%s] %6.2f%%  %s GB used of %s GB, %s GB available\n",
			kind, bar, percent,
			tableValues.Fields[2].Values[row],
			tableValues.Fields[1].Values[row],
			tableValues.Fields[3].Values[row]))
	}
	return sb.String()
}
