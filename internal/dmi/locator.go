// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package dmi

import (
	"fmt"
	"regexp"
	"strings"
)

/* Bank Locator formats seen on multi-socket systems where the vendor
 * prefixes the physical CPU socket with "P"...
 * 		P0 CHANNEL A
 * 		P0 CHANNEL B
 * 		...
 * 		P1 CHANNEL A
 * or, on older boards,
 * 		P0 BANK 0
 * 		P0 BANK 1
 */
var (
	socketChannelRe = regexp.MustCompile(`^P(\d+) CHANNEL (.+)$`)
	socketBankRe    = regexp.MustCompile(`^P(\d+) BANK (\d+)$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeBankLocator rewrites a raw bank-locator string into a uniform
// "CPU x / Channel y" or "CPU x / Bank y" form. Unrecognized vendor formats
// are passed through whitespace-normalized but otherwise untouched. The
// Unknown sentinel and empty input come back as the sentinel.
func NormalizeBankLocator(raw string) string {
	if raw == Unknown {
		return Unknown
	}
	trimmed := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if trimmed == "" {
		return Unknown
	}
	if match := socketChannelRe.FindStringSubmatch(trimmed); match != nil {
		return fmt.Sprintf("CPU %s / Channel %s", match[1], match[2])
	}
	if match := socketBankRe.FindStringSubmatch(trimmed); match != nil {
		return fmt.Sprintf("CPU %s / Bank %s", match[1], match[2])
	}
	return trimmed
}

// LabelCounts tracks how many times each normalized bank label has been seen
// during one parsing pass over a module list. Callers create a fresh map per
// pass; the counts are never shared across passes.
type LabelCounts map[string]int

// Decorate returns the label unchanged on its first occurrence and appends a
// disambiguating " (module #N)" suffix on the Nth occurrence of the same
// string. The Unknown sentinel and empty labels pass through undecorated and
// do not consume a counter slot, so multiple unknown-bank modules are not
// numbered against each other.
func (c LabelCounts) Decorate(label string) string {
	if label == Unknown || label == "" {
		return label
	}
	c[label]++
	if n := c[label]; n > 1 {
		return fmt.Sprintf("%s (module #%d)", label, n)
	}
	return label
}
