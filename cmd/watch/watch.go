// Package watch is a subcommand of the root command. It samples memory usage
// at a fixed interval and prints one line per sample. Samples can also be
// exposed as Prometheus gauges.
package watch

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"memspect/internal/common"
	"memspect/internal/mem"
	"memspect/internal/script"
)

const cmdName = "watch"

var examples = []string{
	fmt.Sprintf("  Sample every 2 seconds until interrupted:  $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Take 10 samples, 5 seconds apart:          $ %s %s --interval 5 --count 10", common.AppName, cmdName),
	fmt.Sprintf("  Expose samples as Prometheus gauges:       $ %s %s --prometheus 9414", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Watch memory usage over time",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagInterval       int
	flagCount          int
	flagPrometheusPort int
)

const (
	flagIntervalName       = "interval"
	flagCountName          = "count"
	flagPrometheusPortName = "prometheus"
)

func init() {
	Cmd.Flags().IntVar(&flagInterval, flagIntervalName, 2, "sampling interval in seconds")
	Cmd.Flags().IntVar(&flagCount, flagCountName, 0, "number of samples to take, 0 to sample until interrupted")
	Cmd.Flags().IntVar(&flagPrometheusPort, flagPrometheusPortName, 0, "port on which to expose Prometheus gauges, 0 to disable")
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if flagInterval < 1 {
		err := fmt.Errorf("%s must be 1 or greater", flagIntervalName)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if flagCount < 0 {
		err := fmt.Errorf("%s must be 0 or greater", flagCountName)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if flagPrometheusPort < 0 || flagPrometheusPort > 65535 {
		err := fmt.Errorf("%s must be a valid port number", flagPrometheusPortName)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

var (
	gaugeMemoryGB = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "memspect_memory_gb",
		Help: "Memory size in gigabytes by kind and stat.",
	}, []string{"kind", "stat"})
	gaugeUsedPercent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "memspect_memory_used_percent",
		Help: "Memory used percentage by kind.",
	}, []string{"kind"})
)

func runCmd(cmd *cobra.Command, args []string) error {
	if flagPrometheusPort != 0 {
		registry := prometheus.NewRegistry()
		registry.MustRegister(gaugeMemoryGB, gaugeUsedPercent)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", flagPrometheusPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("serving Prometheus gauges", slog.Int("port", flagPrometheusPort))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("prometheus listener failed", slog.String("error", err.Error()))
				fmt.Fprintf(os.Stderr, "Error: prometheus listener failed: %v\n", err)
			}
		}()
	}

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChannel)

	printer := message.NewPrinter(language.English)
	meminfoScript := script.GetScriptByName(script.MeminfoScriptName)
	ticker := time.NewTicker(time.Duration(flagInterval) * time.Second)
	defer ticker.Stop()
	fmt.Printf("%-20s %-9s %15s %12s %12s %9s\n", "Timestamp", "Kind", "Total (kB)", "Used (GB)", "Avail (GB)", "Used (%)")
	for sample := 0; flagCount == 0 || sample < flagCount; sample++ {
		if sample > 0 {
			select {
			case sig := <-sigChannel:
				slog.Info("received signal, stopping watch", slog.String("signal", sig.String()))
				return nil
			case <-ticker.C:
			}
		}
		outputs := script.RunScripts([]script.ScriptDefinition{meminfoScript})
		counters := mem.ParseCounters(outputs[script.MeminfoScriptName].Stdout)
		timestamp := time.Now().Local().Format("2006-01-02 15:04:05")
		ram, ok := mem.ComputeUsage(counters.MemTotalKB, counters.MemAvailableKB)
		if !ok {
			slog.Warn("memory counters unavailable, skipping sample")
			continue
		}
		printSample(printer, timestamp, "RAM", counters.MemTotalKB, ram)
		setGauges("ram", ram)
		if swap, ok := mem.SwapUsage(counters.SwapTotalKB, counters.SwapFreeKB); ok {
			printSample(printer, timestamp, "Swap", counters.SwapTotalKB, swap)
			setGauges("swap", swap)
		}
	}
	return nil
}

func printSample(printer *message.Printer, timestamp string, kind string, totalKB int64, usage mem.Usage) {
	_, _ = printer.Printf("%-20s %-9s %15d %12.2f %12.2f %9.2f\n", timestamp, kind, totalKB, usage.UsedGB, usage.AvailableGB, usage.Percent)
}

func setGauges(kind string, usage mem.Usage) {
	gaugeMemoryGB.WithLabelValues(kind, "total").Set(usage.TotalGB)
	gaugeMemoryGB.WithLabelValues(kind, "used").Set(usage.UsedGB)
	gaugeMemoryGB.WithLabelValues(kind, "available").Set(usage.AvailableGB)
	gaugeUsedPercent.WithLabelValues(kind).Set(usage.Percent)
}
