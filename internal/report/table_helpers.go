// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"fmt"
	"strconv"

	"memspect/internal/dmi"
	"memspect/internal/mem"
	"memspect/internal/script"
)

func memoryModulesTableValues(outputs map[string]script.ScriptOutput) []Field {
	modules := dmi.ModulesFrom(outputs[script.MemoryDevicesScriptName].Stdout)
	if len(modules) == 0 {
		return []Field{}
	}
	fields := []Field{
		{Name: "Bank"},
		{Name: "Locator"},
		{Name: "Size"},
		{Name: "Type"},
		{Name: "Speed"},
		{Name: "Manufacturer"},
		{Name: "Part"},
		{Name: "Serial"},
		{Name: "Form Factor"},
		{Name: "Data Width"},
		{Name: "Total Width"},
		{Name: "Voltage"},
	}
	for _, module := range modules {
		fields[0].Values = append(fields[0].Values, module.BankLocatorDisplay)
		fields[1].Values = append(fields[1].Values, module.SlotLocator)
		fields[2].Values = append(fields[2].Values, module.Size)
		fields[3].Values = append(fields[3].Values, module.MemoryType)
		fields[4].Values = append(fields[4].Values, module.Speed)
		fields[5].Values = append(fields[5].Values, module.Manufacturer)
		fields[6].Values = append(fields[6].Values, module.PartNumber)
		fields[7].Values = append(fields[7].Values, module.SerialNumber)
		fields[8].Values = append(fields[8].Values, module.FormFactor)
		fields[9].Values = append(fields[9].Values, module.DataWidth)
		fields[10].Values = append(fields[10].Values, module.TotalWidth)
		fields[11].Values = append(fields[11].Values, module.ConfiguredVoltage)
	}
	return fields
}

func memoryArrayTableValues(outputs map[string]script.ScriptOutput) []Field {
	modules := dmi.ModulesFrom(outputs[script.MemoryDevicesScriptName].Stdout)
	arrayInfo := dmi.ArrayInfoFrom(outputs[script.MemoryArrayScriptName].Stdout, modules)
	if arrayInfo.MaxCapacity == dmi.Unknown && len(modules) == 0 {
		return []Field{}
	}
	return []Field{
		{Name: "Maximum Capacity", Values: []string{arrayInfo.MaxCapacity}},
		{Name: "Memory Slots", Values: []string{arrayInfo.NumberOfSlots}},
		{Name: "Populated Slots", Values: []string{strconv.Itoa(len(modules))}},
		{Name: "Error Correction", Values: []string{arrayInfo.ECCType}},
		{Name: "Supported Type", Values: []string{arrayInfo.SupportedType}},
	}
}

func memoryUsageTableValues(outputs map[string]script.ScriptOutput) []Field {
	counters := mem.ParseCounters(outputs[script.MeminfoScriptName].Stdout)
	ram, ok := mem.ComputeUsage(counters.MemTotalKB, counters.MemAvailableKB)
	if !ok {
		return []Field{}
	}
	fields := []Field{
		{Name: "Kind"},
		{Name: "Total (GB)"},
		{Name: "Used (GB)"},
		{Name: "Available (GB)"},
		{Name: "Used (%)"},
	}
	appendUsage := func(kind string, usage mem.Usage) {
		fields[0].Values = append(fields[0].Values, kind)
		fields[1].Values = append(fields[1].Values, fmt.Sprintf("%.2f", usage.TotalGB))
		fields[2].Values = append(fields[2].Values, fmt.Sprintf("%.2f", usage.UsedGB))
		fields[3].Values = append(fields[3].Values, fmt.Sprintf("%.2f", usage.AvailableGB))
		fields[4].Values = append(fields[4].Values, fmt.Sprintf("%.2f", usage.Percent))
	}
	appendUsage("RAM", ram)
	if swap, ok := mem.SwapUsage(counters.SwapTotalKB, counters.SwapFreeKB); ok {
		appendUsage("Swap", swap)
	}
	return fields
}
