// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package check

import (
	"fmt"
	"os"

	"github.com/Knetic/govaluate"
	"gopkg.in/yaml.v2"

	"memspect/internal/dmi"
	"memspect/internal/mem"
)

// RuleDefinition is one rule as written in the rules file.
type RuleDefinition struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expr"`
}

type rulesFile struct {
	Rules []RuleDefinition `yaml:"rules"`
}

// Rule is a rule with its expression compiled and ready to evaluate.
type Rule struct {
	Name       string
	expression *govaluate.EvaluableExpression
}

// RuleResult is the outcome of evaluating one rule.
type RuleResult struct {
	Name   string
	Passed bool
	Err    error
}

// LoadRules reads rule definitions from a YAML file and compiles their
// expressions. A rule that fails to parse is an error, not a failed rule.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %v", err)
	}
	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %v", err)
	}
	if len(parsed.Rules) == 0 {
		return nil, fmt.Errorf("no rules found in %s", path)
	}
	var rules []Rule
	for _, def := range parsed.Rules {
		if def.Name == "" {
			return nil, fmt.Errorf("rule with expression %q has no name", def.Expression)
		}
		expression, err := govaluate.NewEvaluableExpression(def.Expression)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expression for rule %q: %v", def.Name, err)
		}
		rules = append(rules, Rule{Name: def.Name, expression: expression})
	}
	return rules, nil
}

// RuleParameters builds the variables available to rule expressions from the
// parsed inventory and usage data. Numeric parameters are float64 so that
// expression arithmetic behaves consistently.
func RuleParameters(modules []dmi.MemoryModule, arrayInfo dmi.ArrayInfo, ram mem.Usage, ramOK bool, swap mem.Usage, swapOK bool) map[string]any {
	memoryType := dmi.TypeConsensus(modules)
	params := map[string]any{
		"module_count": float64(len(modules)),
		"memory_type":  memoryType,
		"ecc_type":     arrayInfo.ECCType,
		"mixed_types":  memoryType == dmi.MixedTypes,
		"total_gb":     0.0,
		"used_percent": 0.0,
		"available_gb": 0.0,
		"swap_used_gb": 0.0,
	}
	if ramOK {
		params["total_gb"] = ram.TotalGB
		params["used_percent"] = ram.Percent
		params["available_gb"] = ram.AvailableGB
	}
	if swapOK {
		params["swap_used_gb"] = swap.UsedGB
	}
	return params
}

// EvaluateRules evaluates every rule against the given parameters. An
// expression that errors or does not produce a boolean is reported as a
// failed rule with its error attached.
func EvaluateRules(rules []Rule, params map[string]any) []RuleResult {
	results := make([]RuleResult, 0, len(rules))
	for _, rule := range rules {
		value, err := rule.expression.Evaluate(params)
		if err != nil {
			results = append(results, RuleResult{Name: rule.Name, Passed: false, Err: err})
			continue
		}
		passed, ok := value.(bool)
		if !ok {
			results = append(results, RuleResult{Name: rule.Name, Passed: false, Err: fmt.Errorf("expression did not evaluate to a boolean")})
			continue
		}
		results = append(results, RuleResult{Name: rule.Name, Passed: passed})
	}
	return results
}
