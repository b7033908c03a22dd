// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package dmi

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// MixedTypes is reported when the installed modules do not agree on a single
// memory technology. A mixed-type array is a meaningfully different condition
// from a uniform one.
const MixedTypes = "Mixed"

// MemoryModule is one populated DIMM from a DMI type 17 record. All fields
// are display strings; a field absent from the source record holds the
// Unknown sentinel. Records are immutable once constructed.
type MemoryModule struct {
	SlotLocator        string
	BankLocatorRaw     string
	BankLocatorDisplay string
	Size               string
	Manufacturer       string
	PartNumber         string
	SerialNumber       string
	FormFactor         string
	MemoryType         string
	Speed              string
	DataWidth          string
	TotalWidth         string
	ConfiguredVoltage  string
}

// ArrayInfo is the physical memory array descriptor from a DMI type 16
// record, plus the memory technology derived from the installed modules.
type ArrayInfo struct {
	MaxCapacity   string
	NumberOfSlots string
	ECCType       string
	SupportedType string
}

// ModulesFrom parses raw dmidecode memory-device output into the list of
// populated modules, in table order. Empty slots and non-module records are
// filtered out. Bank locators are normalized and, when the same label repeats
// across modules, decorated with an occurrence suffix. Empty input yields an
// empty list.
func ModulesFrom(raw string) []MemoryModule {
	var modules []MemoryModule
	labels := make(LabelCounts)
	for block := range Blocks(raw) {
		if !IsPopulatedModule(block) {
			continue
		}
		bankLocator := FieldValue(block, "Bank Locator")
		modules = append(modules, MemoryModule{
			SlotLocator:        FieldValue(block, "Locator"),
			BankLocatorRaw:     bankLocator,
			BankLocatorDisplay: labels.Decorate(NormalizeBankLocator(bankLocator)),
			Size:               FieldValue(block, "Size"),
			Manufacturer:       FieldValue(block, "Manufacturer"),
			PartNumber:         FieldValue(block, "Part Number"),
			SerialNumber:       FieldValue(block, "Serial Number"),
			FormFactor:         FieldValue(block, "Form Factor"),
			MemoryType:         FieldValue(block, "Type"),
			Speed:              FieldValue(block, "Speed"),
			DataWidth:          FieldValue(block, "Data Width"),
			TotalWidth:         FieldValue(block, "Total Width"),
			ConfiguredVoltage:  FieldValue(block, "Configured Voltage"),
		})
	}
	return modules
}

// ArrayInfoFrom parses raw dmidecode physical-memory-array output and derives
// the supported memory type from the given modules. The first array record
// wins; header blocks without a Maximum Capacity field are skipped. An
// unavailable dump yields a descriptor of all sentinels.
func ArrayInfoFrom(raw string, modules []MemoryModule) ArrayInfo {
	info := ArrayInfo{
		MaxCapacity:   Unknown,
		NumberOfSlots: Unknown,
		ECCType:       Unknown,
		SupportedType: TypeConsensus(modules),
	}
	for block := range Blocks(raw) {
		maxCapacity := FieldValue(block, "Maximum Capacity")
		if maxCapacity == Unknown {
			continue
		}
		info.MaxCapacity = maxCapacity
		info.NumberOfSlots = FieldValue(block, "Number Of Devices")
		info.ECCType = FieldValue(block, "Error Correction Type")
		break
	}
	return info
}

// TypeConsensus aggregates the memory technology across the installed
// modules: the single value when all modules agree, MixedTypes when they
// don't, and the Unknown sentinel when no module reports a type. The result
// is set-based and therefore independent of module order.
func TypeConsensus(modules []MemoryModule) string {
	types := mapset.NewThreadUnsafeSet[string]()
	for _, module := range modules {
		if module.MemoryType != Unknown {
			types.Add(module.MemoryType)
		}
	}
	switch types.Cardinality() {
	case 0:
		return Unknown
	case 1:
		memoryType, _ := types.Pop()
		return memoryType
	default:
		return MixedTypes
	}
}
