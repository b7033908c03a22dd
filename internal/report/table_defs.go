// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package report assembles parsed memory data into tables and renders them
// in txt, json, and xlsx formats.
package report

import (
	"github.com/xuri/excelize/v2"

	"memspect/internal/script"
)

// Field is one column (or one name/value pair) of a table.
type Field struct {
	Name   string
	Values []string
}

// TableValues is a table definition along with the values for each of its fields.
type TableValues struct {
	TableDefinition
	Fields []Field
}

type FieldsRetriever func(map[string]script.ScriptOutput) []Field
type TextTableRenderer func(TableValues) string
type XlsxTableRenderer func(TableValues, *excelize.File, string, *int)

// TableDefinition defines the structure of a table in the report
type TableDefinition struct {
	Name        string
	ScriptNames []string
	// Fields function is called to retrieve field values from the script outputs
	FieldsFunc  FieldsRetriever
	HasRows     bool   // table is meant to be displayed in row form, i.e., a field may have multiple values
	NoDataFound string // message to display when no data is found
	// render functions are used to override the default rendering behavior
	TextTableRendererFunc TextTableRenderer
	XlsxTableRendererFunc XlsxTableRenderer
}

// table names
const (
	MemoryModulesTableName = "Memory Modules"
	MemoryArrayTableName   = "Memory Array"
	MemoryUsageTableName   = "Memory Usage"
)

var tableDefinitions = map[string]TableDefinition{
	MemoryModulesTableName: {
		Name:        MemoryModulesTableName,
		ScriptNames: []string{script.MemoryDevicesScriptName},
		FieldsFunc:  memoryModulesTableValues,
		HasRows:     true,
		NoDataFound: "No installed memory modules found. The inventory command may require elevated privileges.",
	},
	MemoryArrayTableName: {
		Name: MemoryArrayTableName,
		ScriptNames: []string{
			script.MemoryArrayScriptName,
			script.MemoryDevicesScriptName,
		},
		FieldsFunc: memoryArrayTableValues,
	},
	MemoryUsageTableName: {
		Name:                  MemoryUsageTableName,
		ScriptNames:           []string{script.MeminfoScriptName},
		FieldsFunc:            memoryUsageTableValues,
		HasRows:               true,
		NoDataFound:           "No memory usage data available.",
		TextTableRendererFunc: usageTextTableRenderer,
	},
}
