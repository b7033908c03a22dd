// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package mem

import (
	"testing"
)

const meminfoSample = `MemTotal:       16318588 kB
MemFree:         1024000 kB
MemAvailable:    8159294 kB
Buffers:          512000 kB
Cached:          4096000 kB
SwapCached:            0 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
Dirty:               128 kB
`

func TestParseCounters(t *testing.T) {
	counters := ParseCounters(meminfoSample)
	if counters.MemTotalKB != 16318588 {
		t.Errorf("MemTotalKB = %d, want %d", counters.MemTotalKB, 16318588)
	}
	if counters.MemAvailableKB != 8159294 {
		t.Errorf("MemAvailableKB = %d, want %d", counters.MemAvailableKB, 8159294)
	}
	if counters.SwapTotalKB != 2097148 {
		t.Errorf("SwapTotalKB = %d, want %d", counters.SwapTotalKB, 2097148)
	}
	if counters.SwapFreeKB != 2097148 {
		t.Errorf("SwapFreeKB = %d, want %d", counters.SwapFreeKB, 2097148)
	}
}

func TestParseCountersEmptyInput(t *testing.T) {
	counters := ParseCounters("")
	if counters != (Counters{}) {
		t.Errorf("expected zero counters, got %+v", counters)
	}
}

func TestCounterKB(t *testing.T) {
	tests := []struct {
		name     string
		meminfo  string
		key      string
		expected int64
	}{
		{"simple", "MemTotal:       16318588 kB", "MemTotal", 16318588},
		{"absent key", "MemTotal:       16318588 kB", "SwapTotal", 0},
		{"key is prefix of another", "SwapCached: 10 kB\nSwap: 20 kB", "Swap", 20},
		{"no value", "MemTotal:", "MemTotal", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CounterKB(tt.meminfo, tt.key)
			if got != tt.expected {
				t.Errorf("CounterKB(%q, %q) = %d, want %d", tt.meminfo, tt.key, got, tt.expected)
			}
		})
	}
}
