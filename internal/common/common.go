// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package common defines data structures shared by the application commands.
package common

import (
	"os"
	"path/filepath"
)

var AppName = filepath.Base(os.Args[0])

// AppContext represents the application context that can be accessed from all commands.
type AppContext struct {
	Timestamp   string // app startup time, used in output file names
	OutputDir   string // directory where the application writes output files
	LogFilePath string // path to the log file, empty when logging to stdout
	Version     string // version of the application
	Debug       bool   // debug logging enabled
}
