// Package check is a subcommand of the root command. It evaluates
// user-supplied rules against the memory inventory and usage data and
// reports pass/fail per rule.
package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"memspect/internal/common"
	"memspect/internal/dmi"
	"memspect/internal/mem"
	"memspect/internal/script"
)

const cmdName = "check"

var examples = []string{
	fmt.Sprintf("  Evaluate rules against the local host:  $ %s %s --rules ./rules.yaml", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Evaluate rules against memory inventory and usage",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var flagRulesFile string

const flagRulesFileName = "rules"

func init() {
	Cmd.Flags().StringVar(&flagRulesFile, flagRulesFileName, "", "path to a YAML file of rules to evaluate")
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if flagRulesFile == "" {
		err := fmt.Errorf("the --%s flag is required", flagRulesFileName)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

const (
	colorReset = "\033[0m"
	colorGreen = "\033[92m"
	colorRed   = "\033[31m"
)

func runCmd(cmd *cobra.Command, args []string) error {
	rules, err := LoadRules(flagRulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	scripts := []script.ScriptDefinition{
		script.GetScriptByName(script.MemoryDevicesScriptName),
		script.GetScriptByName(script.MemoryArrayScriptName),
		script.GetScriptByName(script.MeminfoScriptName),
	}
	outputs := script.RunScripts(scripts)
	modules := dmi.ModulesFrom(outputs[script.MemoryDevicesScriptName].Stdout)
	arrayInfo := dmi.ArrayInfoFrom(outputs[script.MemoryArrayScriptName].Stdout, modules)
	counters := mem.ParseCounters(outputs[script.MeminfoScriptName].Stdout)
	ram, ramOK := mem.ComputeUsage(counters.MemTotalKB, counters.MemAvailableKB)
	swap, swapOK := mem.SwapUsage(counters.SwapTotalKB, counters.SwapFreeKB)
	params := RuleParameters(modules, arrayInfo, ram, ramOK, swap, swapOK)

	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	results := EvaluateRules(rules, params)
	failed := 0
	for _, result := range results {
		verdict := "PASS"
		color := colorGreen
		if !result.Passed {
			verdict = "FAIL"
			color = colorRed
			failed++
		}
		if colorize {
			verdict = color + verdict + colorReset
		}
		if result.Err != nil {
			fmt.Printf("%s  %s (%v)\n", verdict, result.Name, result.Err)
		} else {
			fmt.Printf("%s  %s\n", verdict, result.Name)
		}
	}
	fmt.Printf("%d of %d rules passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d rule(s) failed", failed)
	}
	return nil
}
