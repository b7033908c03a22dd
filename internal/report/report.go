// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"fmt"
	"os"
	"strings"
)

const (
	FormatXlsx = "xlsx"
	FormatJson = "json"
	FormatTxt  = "txt"
	FormatAll  = "all"
)

const NoDataFound = "No data found."

var FormatOptions = []string{FormatTxt, FormatJson, FormatXlsx}

// Create generates a report in the specified format based on the provided
// table values. The function ensures that all fields in a table have the
// same number of values before generating the report. If the format is not
// supported, the function panics with an error message.
func Create(format string, allTableValues []TableValues) (out []byte, err error) {
	// make sure that all fields have the same number of values
	for _, tableValues := range allTableValues {
		numRows := -1
		for _, fieldValues := range tableValues.Fields {
			if numRows == -1 {
				numRows = len(fieldValues.Values)
				continue
			}
			if len(fieldValues.Values) != numRows {
				return nil, fmt.Errorf("expected %d value(s) for field, found %d", numRows, len(fieldValues.Values))
			}
		}
	}
	switch format {
	case FormatTxt:
		return createTextReport(allTableValues)
	case FormatJson:
		return createJsonReport(allTableValues)
	case FormatXlsx:
		return createXlsxReport(allTableValues)
	}
	panic(fmt.Sprintf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format))
}

// WriteReport writes a rendered report to the given path.
func WriteReport(out []byte, path string) error {
	if err := os.WriteFile(path, out, 0644); err != nil { // #nosec G306
		return fmt.Errorf("failed to write report file: %v", err)
	}
	return nil
}
