// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package mem computes display-ready memory usage summaries from the kernel
// memory counters in /proc/meminfo.
package mem

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Counters holds the raw kilobyte counters of interest from /proc/meminfo.
// A counter missing from the source is 0.
type Counters struct {
	MemTotalKB     int64
	MemAvailableKB int64
	SwapTotalKB    int64
	SwapFreeKB     int64
}

// ParseCounters extracts the memory counters from /proc/meminfo content.
// An empty or unreadable input yields zero counters, never an error.
func ParseCounters(meminfo string) Counters {
	return Counters{
		MemTotalKB:     CounterKB(meminfo, "MemTotal"),
		MemAvailableKB: CounterKB(meminfo, "MemAvailable"),
		SwapTotalKB:    CounterKB(meminfo, "SwapTotal"),
		SwapFreeKB:     CounterKB(meminfo, "SwapFree"),
	}
}

// CounterKB returns the kilobyte value for the given /proc/meminfo key, e.g.,
// "MemTotal". Values are one "<Key>: <value> kB" pair per line. Returns 0
// when the key is absent or the value doesn't parse.
func CounterKB(meminfo string, key string) int64 {
	re := regexp.MustCompile(`^` + key + `:\s*(\d+)`)
	for line := range strings.SplitSeq(meminfo, "\n") {
		match := re.FindStringSubmatch(strings.TrimSpace(line))
		if len(match) > 1 {
			val, err := strconv.ParseInt(match[1], 10, 64)
			if err != nil {
				slog.Warn("failed to parse meminfo counter", slog.String("key", key), slog.String("value", match[1]))
				return 0
			}
			return val
		}
	}
	return 0
}
