// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package mem

import (
	"math"
)

// UsageBarWidth is the number of cells in the discretized usage bar.
const UsageBarWidth = 40

// swapUsedEpsilonGB suppresses negligible swap activity, e.g., rounding
// noise, from being reported as swap in use.
const swapUsedEpsilonGB = 0.01

// Usage is a display-ready memory usage summary. Percent is in the closed
// interval [0, 100].
type Usage struct {
	TotalGB     float64
	UsedGB      float64
	AvailableGB float64
	Percent     float64
}

// toGB converts kilobytes to gigabytes, rounded half-up to two decimal
// places.
func toGB(kb int64) float64 {
	return math.Round(float64(kb)/1024/1024*100) / 100
}

// ComputeUsage converts raw total/available kilobyte counters into a usage
// summary. Used is clamped to >= 0 to tolerate snapshots where available
// briefly exceeds total. When total <= 0 there is no summary to report and
// ok is false; callers must not fabricate a percentage from degenerate input.
func ComputeUsage(totalKB int64, availableKB int64) (usage Usage, ok bool) {
	if totalKB <= 0 {
		return Usage{}, false
	}
	usedKB := max(totalKB-availableKB, 0)
	usage = Usage{
		TotalGB:     toGB(totalKB),
		UsedGB:      toGB(usedKB),
		AvailableGB: toGB(availableKB),
		Percent:     min(max(float64(usedKB)/float64(totalKB)*100, 0), 100),
	}
	return usage, true
}

// SwapUsage converts raw swap total/free kilobyte counters into a usage
// summary. Swap is only reported when some is configured and more than a
// negligible amount is in use; otherwise ok is false.
func SwapUsage(totalKB int64, freeKB int64) (usage Usage, ok bool) {
	usage, ok = ComputeUsage(totalKB, freeKB)
	if !ok || usage.UsedGB <= swapUsedEpsilonGB {
		return Usage{}, false
	}
	return usage, true
}

// BarFill returns the number of filled cells for a usage bar of the given
// width, clamped to [0, width].
func BarFill(percent float64, width int) int {
	return min(max(int(math.Round(percent/100*float64(width))), 0), width)
}
