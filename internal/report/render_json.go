// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"encoding/json"
)

func createJsonReport(allTableValues []TableValues) (out []byte, err error) {
	type outRecord map[string]string
	type outTable []outRecord
	type outReport map[string]outTable
	oReport := make(outReport)
	for _, tableValues := range allTableValues {
		var oTable outTable
		if len(tableValues.Fields) == 0 || len(tableValues.Fields[0].Values) == 0 {
			oReport[tableValues.Name] = outTable{}
			continue
		}
		numRows := len(tableValues.Fields[0].Values)
		for row := range numRows {
			oRecord := make(outRecord)
			for _, field := range tableValues.Fields {
				oRecord[field.Name] = field.Values[row]
			}
			oTable = append(oTable, oRecord)
		}
		oReport[tableValues.Name] = oTable
	}
	return json.MarshalIndent(oReport, "", " ")
}
