// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package script runs the external commands that produce the raw text the
// parsers consume. A script that cannot run -- missing program, insufficient
// privileges, non-zero exit -- yields an output with empty stdout; callers
// treat that as "source unavailable" and degrade, it is never fatal.
package script

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
)

// ScriptOutput is the captured result of one script run.
type ScriptOutput struct {
	ScriptDefinition
	Stdout   string
	Stderr   string
	Exitcode int
}

// RunScripts runs the given scripts on the local host and returns their
// outputs as a map keyed by script name. Scripts that require superuser
// privileges are run under sudo when the user can elevate and are skipped
// with a warning otherwise. Every requested script gets an entry in the map.
func RunScripts(scripts []ScriptDefinition) map[string]ScriptOutput {
	canElevate := CanElevatePrivileges()
	scriptOutputs := make(map[string]ScriptOutput)
	for _, script := range scripts {
		scriptOutputs[script.Name] = runScript(script, canElevate)
	}
	return scriptOutputs
}

func runScript(script ScriptDefinition, canElevate bool) ScriptOutput {
	scriptOutput := ScriptOutput{ScriptDefinition: script, Exitcode: -1}
	if script.Depends != "" {
		if _, err := exec.LookPath(script.Depends); err != nil {
			slog.Warn("skipping script, required program not found", slog.String("script", script.Name), slog.String("program", script.Depends))
			return scriptOutput
		}
	}
	var cmd *exec.Cmd
	if script.Superuser && os.Geteuid() != 0 {
		if !canElevate {
			slog.Warn("skipping script, requires superuser privileges and user cannot elevate", slog.String("script", script.Name))
			return scriptOutput
		}
		cmd = exec.Command("sudo", "-n", "bash", "-c", script.Script) // #nosec G204
	} else {
		cmd = exec.Command("bash", "-c", script.Script) // #nosec G204
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	scriptOutput.Stderr = stderr.String()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			scriptOutput.Exitcode = exitErr.ExitCode()
		}
		slog.Warn("script failed", slog.String("script", script.Name), slog.Int("exitcode", scriptOutput.Exitcode), slog.String("stderr", scriptOutput.Stderr), slog.String("error", err.Error()))
		return scriptOutput
	}
	scriptOutput.Stdout = stdout.String()
	scriptOutput.Exitcode = 0
	return scriptOutput
}

// CanElevatePrivileges returns true when the user is root or passwordless
// sudo is configured. We never prompt for a password.
func CanElevatePrivileges() bool {
	if os.Geteuid() == 0 {
		return true
	}
	cmd := exec.Command("sudo", "-kn", "true")
	if err := cmd.Run(); err != nil {
		slog.Debug("user cannot elevate privileges", slog.String("error", err.Error()))
		return false
	}
	return true
}
