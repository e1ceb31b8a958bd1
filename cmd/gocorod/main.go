// Command gocorod is a small demo harness around a gocoro.ProcessorPool,
// in the spirit of raft-recovery's "run" command: load a YAML config,
// start the pool, submit a demo workload, and shut down cleanly on
// SIGINT/SIGTERM.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyformat99/gocoro"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gocorod",
		Short:   "gocorod runs a gocoro ProcessorPool with a demo workload",
		Version: "0.1.0",
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (cores, workers_per_core, stack_limit)")
	root.AddCommand(buildRunCmd())
	return root
}

func buildRunCmd() *cobra.Command {
	var tasks int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the pool and submit a demo workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(tasks)
		},
	}
	cmd.Flags().IntVar(&tasks, "tasks", 100, "number of demo tasks to submit")
	return cmd
}

func run(tasks int) error {
	logger := gocoro.NewLogger(os.Stderr)

	var cfg *gocoro.Config
	if configFile != "" {
		var err error
		cfg, err = gocoro.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("gocorod: load config: %w", err)
		}
	} else {
		cfg = &gocoro.Config{Cores: 2, WorkersPerCore: 2}
	}

	var pool *gocoro.ProcessorPool
	var err error
	if cfg.Cores > 0 {
		pool, err = gocoro.NewProcessorPoolWithCores(cfg.Cores, cfg.WorkersPerCore, cfg.Options(logger)...)
	} else {
		pool, err = gocoro.NewProcessorPool(cfg.WorkersPerCore, cfg.Options(logger)...)
	}
	if err != nil {
		return fmt.Errorf("gocorod: start pool: %w", err)
	}

	for i := 0; i < tasks; i++ {
		i := i
		pool.AddTask(func(ord *gocoro.Ordinator) {
			logger.Info("task running", gocoro.F("task", i), gocoro.F("routine", ord.Current()))
		})
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sig:
		logger.Warn("received shutdown signal")
	case <-time.After(2 * time.Second):
		logger.Info("demo workload window elapsed")
	}

	return pool.Finalize()
}
