// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package dmi parses the memory tables from DMI (dmidecode) output into
// normalized, display-ready records. Vendors fill these tables loosely, so
// extraction is tolerant: a missing or empty field is represented by the
// Unknown sentinel, never an error.
package dmi

import (
	"iter"
	"strings"
)

// Unknown is the display placeholder for a field that is absent from the
// source record. It is meaningful display data, distinct from an empty string.
const Unknown = "-"

// Blocks splits raw dmidecode output into logical records. Records are
// delimited by one or more blank lines. Leading and trailing blank runs are
// dropped, a trailing record without a final blank line is still emitted,
// and no record is ever merged with its neighbor. An empty or
// whitespace-only input yields an empty sequence. The sequence is lazy and
// restartable; re-splitting the same text yields identical results.
func Blocks(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var lines []string
		for line := range strings.SplitSeq(raw, "\n") {
			if strings.TrimSpace(line) == "" {
				if len(lines) > 0 {
					if !yield(strings.Join(lines, "\n")) {
						return
					}
					lines = nil
				}
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			yield(strings.Join(lines, "\n"))
		}
	}
}

// FieldValue scans the lines of a record for the given case-sensitive key
// and returns its value with surrounding whitespace trimmed. A line matches
// when, after stripping leading whitespace, it begins with "<key>:". The
// first match wins; duplicate keys later in the record are ignored. When no
// line matches, or the value is empty, the Unknown sentinel is returned.
func FieldValue(block string, key string) string {
	prefix := key + ":"
	for line := range strings.SplitSeq(block, "\n") {
		rest, found := strings.CutPrefix(strings.TrimLeft(line, " \t"), prefix)
		if !found {
			continue
		}
		value := strings.TrimSpace(rest)
		if value == "" {
			return Unknown
		}
		return value
	}
	return Unknown
}

// IsPopulatedModule reports whether a record describes an installed memory
// module. Records without an explicit Size field (e.g., other DMI table
// types captured in the same dump) and records for empty slots are excluded.
func IsPopulatedModule(block string) bool {
	size := FieldValue(block, "Size")
	return size != Unknown && size != "No Module Installed"
}
