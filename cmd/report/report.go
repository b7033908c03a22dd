// Package report is a subcommand of the root command. It generates a memory
// inventory and usage report for the local host.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"memspect/internal/common"
	"memspect/internal/report"
	"memspect/internal/script"
)

const cmdName = "report"

var examples = []string{
	fmt.Sprintf("  Full report for the local host:  $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Module inventory only:           $ %s %s --dimm", common.AppName, cmdName),
	fmt.Sprintf("  Usage in all formats:            $ %s %s --usage --format all", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Generate memory inventory and usage report",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

// flag vars
var (
	flagAll    bool
	flagDimm   bool
	flagArray  bool
	flagUsage  bool
	flagFormat []string
)

// flag names
const (
	flagAllName    = "all"
	flagDimmName   = "dimm"
	flagArrayName  = "array"
	flagUsageName  = "usage"
	flagFormatName = "format"
)

// categories maps flag names to tables that will be included in the report
var categories = []struct {
	flagVar   *bool
	tableName string
}{
	{&flagDimm, report.MemoryModulesTableName},
	{&flagArray, report.MemoryArrayTableName},
	{&flagUsage, report.MemoryUsageTableName},
}

func init() {
	Cmd.Flags().BoolVar(&flagAll, flagAllName, false, "include all tables")
	Cmd.Flags().BoolVar(&flagDimm, flagDimmName, false, "include the installed memory module table")
	Cmd.Flags().BoolVar(&flagArray, flagArrayName, false, "include the physical memory array table")
	Cmd.Flags().BoolVar(&flagUsage, flagUsageName, false, "include the memory usage table")
	Cmd.Flags().StringSliceVar(&flagFormat, flagFormatName, []string{report.FormatTxt},
		fmt.Sprintf("choose output format(s) from: %s", strings.Join(append([]string{report.FormatAll}, report.FormatOptions...), ", ")))
}

func validateFlags(cmd *cobra.Command, args []string) error {
	for _, format := range flagFormat {
		if format != report.FormatAll && !slices.Contains(report.FormatOptions, format) {
			err := fmt.Errorf("format options are: %s", strings.Join(append([]string{report.FormatAll}, report.FormatOptions...), ", "))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Parent().Context().Value(common.AppContext{}).(common.AppContext)

	// all tables when --all is set or no category flag is set
	var tableNames []string
	for _, cat := range categories {
		if *cat.flagVar {
			tableNames = append(tableNames, cat.tableName)
		}
	}
	if flagAll || len(tableNames) == 0 {
		tableNames = nil
		for _, cat := range categories {
			tableNames = append(tableNames, cat.tableName)
		}
	}

	formats := flagFormat
	if slices.Contains(formats, report.FormatAll) {
		formats = report.FormatOptions
	}

	scripts := report.ScriptsForTables(tableNames)
	outputs := script.RunScripts(scripts)
	allTableValues := report.ProcessTables(tableNames, outputs)

	if err := os.MkdirAll(appContext.OutputDir, 0755); err != nil { // #nosec G301
		err = fmt.Errorf("failed to create output directory: %w", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Error(err.Error())
		return err
	}
	var reportFilePaths []string
	for _, format := range formats {
		out, err := report.Create(format, allTableValues)
		if err != nil {
			err = fmt.Errorf("failed to create %s report: %w", format, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			slog.Error(err.Error())
			return err
		}
		if format == report.FormatTxt {
			fmt.Print(string(out))
		}
		reportFilePath := filepath.Join(appContext.OutputDir, fmt.Sprintf("%s_%s.%s", common.AppName, appContext.Timestamp, format))
		if err := report.WriteReport(out, reportFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			slog.Error(err.Error())
			return err
		}
		reportFilePaths = append(reportFilePaths, reportFilePath)
	}
	fmt.Println("Report files:")
	for _, path := range reportFilePaths {
		fmt.Printf("  %s\n", path)
	}
	return nil
}
