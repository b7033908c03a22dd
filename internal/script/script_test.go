// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"strings"
	"testing"
)

func TestRunScript(t *testing.T) {
	def := ScriptDefinition{
		Name:   "echo test",
		Script: "echo hello",
	}
	output := runScript(def, false)
	if output.Exitcode != 0 {
		t.Fatalf("Exitcode = %d, want 0, stderr: %s", output.Exitcode, output.Stderr)
	}
	if strings.TrimSpace(output.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want %q", output.Stdout, "hello")
	}
}

func TestRunScriptNonZeroExit(t *testing.T) {
	def := ScriptDefinition{
		Name:   "fail test",
		Script: "echo oops >&2; exit 3",
	}
	output := runScript(def, false)
	if output.Exitcode != 3 {
		t.Errorf("Exitcode = %d, want 3", output.Exitcode)
	}
	if output.Stdout != "" {
		t.Errorf("Stdout = %q, want empty on failure", output.Stdout)
	}
	if !strings.Contains(output.Stderr, "oops") {
		t.Errorf("Stderr = %q, want it to contain %q", output.Stderr, "oops")
	}
}

func TestRunScriptMissingDependency(t *testing.T) {
	def := ScriptDefinition{
		Name:    "missing program",
		Script:  "this-program-does-not-exist",
		Depends: "this-program-does-not-exist",
	}
	output := runScript(def, false)
	if output.Exitcode != -1 {
		t.Errorf("Exitcode = %d, want -1 for skipped script", output.Exitcode)
	}
	if output.Stdout != "" {
		t.Errorf("Stdout = %q, want empty for skipped script", output.Stdout)
	}
}

func TestRunScripts(t *testing.T) {
	defs := []ScriptDefinition{
		{Name: "first", Script: "echo one"},
		{Name: "second", Script: "echo two"},
	}
	outputs := RunScripts(defs)
	if len(outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(outputs))
	}
	if strings.TrimSpace(outputs["first"].Stdout) != "one" {
		t.Errorf("first Stdout = %q, want %q", outputs["first"].Stdout, "one")
	}
	if strings.TrimSpace(outputs["second"].Stdout) != "two" {
		t.Errorf("second Stdout = %q, want %q", outputs["second"].Stdout, "two")
	}
}

func TestGetScriptByName(t *testing.T) {
	script := GetScriptByName(MeminfoScriptName)
	if script.Name != MeminfoScriptName {
		t.Errorf("Name = %q, want %q", script.Name, MeminfoScriptName)
	}
	if script.Script == "" {
		t.Error("Script is empty")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown script name")
		}
	}()
	GetScriptByName("no such script")
}
