// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memspect/internal/dmi"
	"memspect/internal/mem"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRulesFile(t, `
rules:
  - name: enough memory
    expr: total_gb >= 16
  - name: uniform modules
    expr: "!mixed_types"
`)
	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "enough memory", rules[0].Name)
	assert.Equal(t, "uniform modules", rules[1].Name)
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no rules", "rules: []"},
		{"bad yaml", "rules: ["},
		{"bad expression", "rules:\n  - name: broken\n    expr: \"total_gb >=\""},
		{"missing name", "rules:\n  - expr: \"total_gb > 0\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRulesFile(t, tt.content)
			_, err := LoadRules(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRuleParameters(t *testing.T) {
	modules := []dmi.MemoryModule{
		{MemoryType: "DDR4"},
		{MemoryType: "DDR4"},
	}
	arrayInfo := dmi.ArrayInfo{ECCType: "Single-bit ECC"}
	ram := mem.Usage{TotalGB: 16.00, UsedGB: 8.00, AvailableGB: 8.00, Percent: 50.00}
	params := RuleParameters(modules, arrayInfo, ram, true, mem.Usage{}, false)
	assert.Equal(t, float64(2), params["module_count"])
	assert.Equal(t, "DDR4", params["memory_type"])
	assert.Equal(t, "Single-bit ECC", params["ecc_type"])
	assert.Equal(t, false, params["mixed_types"])
	assert.Equal(t, 16.00, params["total_gb"])
	assert.Equal(t, 50.00, params["used_percent"])
	assert.Equal(t, 8.00, params["available_gb"])
	assert.Equal(t, 0.0, params["swap_used_gb"])
}

func TestRuleParametersDegraded(t *testing.T) {
	params := RuleParameters(nil, dmi.ArrayInfo{ECCType: dmi.Unknown}, mem.Usage{}, false, mem.Usage{}, false)
	assert.Equal(t, float64(0), params["module_count"])
	assert.Equal(t, dmi.Unknown, params["memory_type"])
	assert.Equal(t, 0.0, params["total_gb"])
}

func TestEvaluateRules(t *testing.T) {
	path := writeRulesFile(t, `
rules:
  - name: enough memory
    expr: total_gb >= 16
  - name: low pressure
    expr: used_percent < 25
  - name: ecc enabled
    expr: ecc_type == 'Single-bit ECC'
  - name: no swap in use
    expr: swap_used_gb == 0
  - name: not a boolean
    expr: total_gb + 1
`)
	rules, err := LoadRules(path)
	require.NoError(t, err)
	params := map[string]any{
		"total_gb":     32.00,
		"used_percent": 50.00,
		"ecc_type":     "Single-bit ECC",
		"swap_used_gb": 0.0,
	}
	results := EvaluateRules(rules, params)
	require.Len(t, results, 5)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.True(t, results[2].Passed)
	assert.True(t, results[3].Passed)
	assert.False(t, results[4].Passed)
	assert.Error(t, results[4].Err)
}
