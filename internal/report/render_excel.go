// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const XlsxPrimarySheetName = "Report"

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

func createXlsxReport(allTableValues []TableValues) (out []byte, err error) {
	f := excelize.NewFile()
	sheetName := XlsxPrimarySheetName
	_ = f.SetSheetName("Sheet1", sheetName)
	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "L", 25)
	row := 1
	for _, tableValues := range allTableValues {
		renderXlsxTable(tableValues, f, sheetName, &row)
	}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	_, err = f.WriteTo(w)
	if err != nil {
		err = fmt.Errorf("failed to write xlsx report to buffer: %v", err)
		return
	}
	out = buf.Bytes()
	return
}

func renderXlsxTable(tableValues TableValues, f *excelize.File, sheetName string, row *int) {
	col := 1
	// print the table name
	tableNameStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	_ = f.SetCellValue(sheetName, cellName(col, *row), tableValues.Name)
	_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), tableNameStyle)
	*row++
	if len(tableValues.Fields) == 0 || len(tableValues.Fields[0].Values) == 0 {
		msg := NoDataFound
		if tableValues.NoDataFound != "" {
			msg = tableValues.NoDataFound
		}
		_ = f.SetCellValue(sheetName, cellName(col, *row), msg)
		*row += 2
		return
	}
	if tableValues.XlsxTableRendererFunc != nil {
		tableValues.XlsxTableRendererFunc(tableValues, f, sheetName, row)
	} else {
		DefaultXlsxTableRendererFunc(tableValues, f, sheetName, row)
	}
	*row++
}

func DefaultXlsxTableRendererFunc(tableValues TableValues, f *excelize.File, sheetName string, row *int) {
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	alignLeft, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	if tableValues.HasRows {
		// print the field names as column headings across the top of the table
		col := 2
		for _, field := range tableValues.Fields {
			_ = f.SetCellValue(sheetName, cellName(col, *row), field.Name)
			_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), headerStyle)
			col++
		}
		col = 2
		*row++
		// print the rows
		tableRows := len(tableValues.Fields[0].Values)
		for tableRow := range tableRows {
			for _, field := range tableValues.Fields {
				value := getValueForCell(field.Values[tableRow])
				_ = f.SetCellValue(sheetName, cellName(col, *row), value)
				_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), alignLeft)
				col++
			}
			col = 2
			*row++
		}
	} else {
		// print the field name followed by its value
		col := 1
		for _, field := range tableValues.Fields {
			var fieldValue string
			if len(tableValues.Fields[0].Values) > 0 {
				fieldValue = field.Values[0]
			}
			_ = f.SetCellValue(sheetName, cellName(col, *row), field.Name)
			col++
			value := getValueForCell(fieldValue)
			_ = f.SetCellValue(sheetName, cellName(col, *row), value)
			_ = f.SetCellStyle(sheetName, cellName(col, *row), cellName(col, *row), alignLeft)
			col = 1
			*row++
		}
	}
}

func getValueForCell(value string) (val any) {
	intValue, err := strconv.Atoi(value)
	if err == nil {
		val = intValue
		return
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err == nil {
		val = floatValue
		return
	}
	val = value
	return
}
