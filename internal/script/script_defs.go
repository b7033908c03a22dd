// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package script

// script name constants
const (
	MemoryDevicesScriptName = "memory devices"
	MemoryArrayScriptName   = "memory array"
	MeminfoScriptName       = "meminfo"
)

// ScriptDefinition describes one command whose output feeds the parsers.
type ScriptDefinition struct {
	Name      string // unique name of the script
	Script    string // the command to run
	Superuser bool   // requires elevated privileges
	Depends   string // external program that must be in the PATH
}

var scriptDefinitions = map[string]ScriptDefinition{
	MemoryDevicesScriptName: {
		Name:      MemoryDevicesScriptName,
		Script:    "dmidecode -t 17",
		Superuser: true,
		Depends:   "dmidecode",
	},
	MemoryArrayScriptName: {
		Name:      MemoryArrayScriptName,
		Script:    "dmidecode -t 16",
		Superuser: true,
		Depends:   "dmidecode",
	},
	MeminfoScriptName: {
		Name:   MeminfoScriptName,
		Script: "cat /proc/meminfo",
	},
}

// GetScriptByName returns the script definition with the given name. It
// panics on an unknown name -- definitions are fixed at build time, so an
// unknown name is a programming error.
func GetScriptByName(name string) ScriptDefinition {
	if script, ok := scriptDefinitions[name]; ok {
		return script
	}
	panic("unknown script: " + name)
}
