// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package dmi

import (
	"testing"
)

func TestNormalizeBankLocator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"socket channel form", "P0 CHANNEL A", "CPU 0 / Channel A"},
		{"socket channel second socket", "P1 CHANNEL B", "CPU 1 / Channel B"},
		{"multi-character channel", "P0 CHANNEL A1", "CPU 0 / Channel A1"},
		{"socket bank form", "P1 BANK 3", "CPU 1 / Bank 3"},
		{"multi-digit socket", "P12 CHANNEL C", "CPU 12 / Channel C"},
		{"unknown sentinel", Unknown, Unknown},
		{"empty input", "", Unknown},
		{"whitespace-only input", "   ", Unknown},
		{"unrecognized format passes through", "Bank 7", "Bank 7"},
		{"vendor format passes through", "NODE 1", "NODE 1"},
		{"internal whitespace collapsed", "  P0   CHANNEL   A  ", "CPU 0 / Channel A"},
		{"lowercase not recognized", "p0 channel a", "p0 channel a"},
		{"bank with non-numeric suffix passes through", "P0 BANK A", "P0 BANK A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBankLocator(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeBankLocator(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLabelCountsDecorate(t *testing.T) {
	labels := make(LabelCounts)
	sequence := []struct {
		input    string
		expected string
	}{
		{"CPU 0 / Channel A", "CPU 0 / Channel A"},
		{"CPU 0 / Channel A", "CPU 0 / Channel A (module #2)"},
		{"CPU 0 / Channel B", "CPU 0 / Channel B"},
		{"CPU 0 / Channel A", "CPU 0 / Channel A (module #3)"},
		{Unknown, Unknown},
		{Unknown, Unknown},
		{"", ""},
		{"CPU 0 / Channel B", "CPU 0 / Channel B (module #2)"},
	}
	for i, step := range sequence {
		got := labels.Decorate(step.input)
		if got != step.expected {
			t.Errorf("step %d: Decorate(%q) = %q, want %q", i, step.input, got, step.expected)
		}
	}
}

func TestLabelCountsIndependentPasses(t *testing.T) {
	first := make(LabelCounts)
	first.Decorate("DIMM A")
	second := make(LabelCounts)
	if got := second.Decorate("DIMM A"); got != "DIMM A" {
		t.Errorf("fresh counts decorated first occurrence: got %q, want %q", got, "DIMM A")
	}
}
