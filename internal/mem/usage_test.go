// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package mem

import (
	"testing"
)

func TestComputeUsage(t *testing.T) {
	tests := []struct {
		name        string
		totalKB     int64
		availableKB int64
		expected    Usage
		expectedOK  bool
	}{
		{
			name:        "half used",
			totalKB:     16 * 1024 * 1024,
			availableKB: 8 * 1024 * 1024,
			expected:    Usage{TotalGB: 16.00, UsedGB: 8.00, AvailableGB: 8.00, Percent: 50.00},
			expectedOK:  true,
		},
		{
			name:        "fully used",
			totalKB:     4 * 1024 * 1024,
			availableKB: 0,
			expected:    Usage{TotalGB: 4.00, UsedGB: 4.00, AvailableGB: 0.00, Percent: 100.00},
			expectedOK:  true,
		},
		{
			name:        "available exceeds total clamps used",
			totalKB:     4 * 1024 * 1024,
			availableKB: 5 * 1024 * 1024,
			expected:    Usage{TotalGB: 4.00, UsedGB: 0.00, AvailableGB: 5.00, Percent: 0.00},
			expectedOK:  true,
		},
		{
			name:        "zero total has no summary",
			totalKB:     0,
			availableKB: 0,
			expectedOK:  false,
		},
		{
			name:        "negative total has no summary",
			totalKB:     -1,
			availableKB: 0,
			expectedOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeUsage(tt.totalKB, tt.availableKB)
			if ok != tt.expectedOK {
				t.Fatalf("ComputeUsage(%d, %d) ok = %v, want %v", tt.totalKB, tt.availableKB, ok, tt.expectedOK)
			}
			if ok && got != tt.expected {
				t.Errorf("ComputeUsage(%d, %d) = %+v, want %+v", tt.totalKB, tt.availableKB, got, tt.expected)
			}
		})
	}
}

func TestComputeUsageRounding(t *testing.T) {
	// 16318588 kB is 15.562... GB; rounds to 15.56
	got, ok := ComputeUsage(16318588, 8159294)
	if !ok {
		t.Fatal("expected a usage summary")
	}
	if got.TotalGB != 15.56 {
		t.Errorf("TotalGB = %v, want %v", got.TotalGB, 15.56)
	}
	if got.UsedGB != 7.78 {
		t.Errorf("UsedGB = %v, want %v", got.UsedGB, 7.78)
	}
}

func TestSwapUsage(t *testing.T) {
	tests := []struct {
		name       string
		totalKB    int64
		freeKB     int64
		expectedOK bool
	}{
		{"no swap configured", 0, 0, false},
		{"swap configured but unused", 2097152, 2097152, false},
		{"negligible swap used", 2097152, 2097152 - 10240, false}, // 10 MB used, 0.01 GB
		{"swap in use", 2097152, 1048576, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage, ok := SwapUsage(tt.totalKB, tt.freeKB)
			if ok != tt.expectedOK {
				t.Errorf("SwapUsage(%d, %d) ok = %v, want %v", tt.totalKB, tt.freeKB, ok, tt.expectedOK)
			}
			if !ok && usage != (Usage{}) {
				t.Errorf("suppressed swap usage should be zero, got %+v", usage)
			}
		})
	}
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		width    int
		expected int
	}{
		{"empty", 0, 40, 0},
		{"full", 100, 40, 40},
		{"half", 50, 40, 20},
		{"rounds to nearest cell", 51, 40, 20},
		{"rounds up past midpoint", 54, 40, 22},
		{"clamped below", -5, 40, 0},
		{"clamped above", 150, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BarFill(tt.percent, tt.width)
			if got != tt.expected {
				t.Errorf("BarFill(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.expected)
			}
		})
	}
}
