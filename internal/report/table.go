// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// table.go provides functions for accessing and processing table definitions.

package report

import (
	"fmt"
	"slices"

	"memspect/internal/script"
)

// GetTableByName retrieves a table definition by its name.
func GetTableByName(name string) TableDefinition {
	if table, ok := tableDefinitions[name]; ok {
		return table
	}
	panic(fmt.Sprintf("table not found: %s", name))
}

// ScriptsForTables returns the script definitions needed to populate the
// given tables, without duplicates.
func ScriptsForTables(tableNames []string) []script.ScriptDefinition {
	var scriptNames []string
	for _, tableName := range tableNames {
		for _, scriptName := range GetTableByName(tableName).ScriptNames {
			if !slices.Contains(scriptNames, scriptName) {
				scriptNames = append(scriptNames, scriptName)
			}
		}
	}
	var scripts []script.ScriptDefinition
	for _, scriptName := range scriptNames {
		scripts = append(scripts, script.GetScriptByName(scriptName))
	}
	return scripts
}

// ProcessTables processes the given tables and script outputs to generate
// table values. It collects values for each field in each table.
func ProcessTables(tableNames []string, scriptOutputs map[string]script.ScriptOutput) (allTableValues []TableValues) {
	for _, tableName := range tableNames {
		table := GetTableByName(tableName)
		allTableValues = append(allTableValues, TableValues{
			TableDefinition: table,
			Fields:          table.FieldsFunc(scriptOutputs),
		})
	}
	return
}
