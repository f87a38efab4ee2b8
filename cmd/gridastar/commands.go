package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/scenario"
	"github.com/pdrpinto/gridastar/internal/server"
)

var (
	startFlag         string
	goalFlag          string
	maxExpansionsFlag int
	envFileFlag       string

	rootCmd = &cobra.Command{
		Use:          "gridastar",
		Short:        "Shortest paths on blocked/passable grids with A*",
		SilenceUsage: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: "Solve a scenario file and print the grid with the path marked",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve searches and stepping sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "Load environment variables from this file before reading configuration")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&startFlag, "start", "", "Override the scenario start as row,col")
	solveCmd.Flags().StringVar(&goalFlag, "goal", "", "Override the scenario goal as row,col")
	solveCmd.Flags().IntVar(&maxExpansionsFlag, "max-expansions", 0, "Give up after this many expansions (0 = no limit)")

	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (config.Config, error) {
	if envFileFlag != "" {
		return config.Load(envFileFlag)
	}
	return config.Load()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	if startFlag != "" {
		if sc.Start, err = parsePosition(startFlag); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if goalFlag != "" {
		if sc.Goal, err = parsePosition(goalFlag); err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
	}

	budget := cfg.MaxExpansions
	if maxExpansionsFlag > 0 {
		budget = maxExpansionsFlag
	}
	opts := []gridastar.Option{gridastar.WithLogger(logger)}
	if budget > 0 {
		opts = append(opts, gridastar.WithMaxExpansions(budget))
	}

	res, err := gridastar.Search(context.Background(), sc.Grid, sc.Start, sc.Goal, opts...)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), sc, res)
	return nil
}

func printResult(w io.Writer, sc scenario.Scenario, res gridastar.Result) {
	fmt.Fprint(w, sc.Grid.Render(res.Path))
	if !res.Found {
		fmt.Fprintf(w, "no path from %s to %s (%d nodes expanded)\n", sc.Start, sc.Goal, res.ExpandedNodes)
		return
	}
	steps := make([]string, len(res.Path))
	for i, p := range res.Path {
		steps[i] = p.String()
	}
	fmt.Fprintf(w, "cost %d, %d nodes expanded\n", res.Cost, res.ExpandedNodes)
	if len(steps) > 0 {
		fmt.Fprintln(w, strings.Join(steps, " "))
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	return server.New(cfg, logger).Run()
}

var errBadPosition = errors.New("position must be row,col")

func parsePosition(s string) (gridastar.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridastar.Position{}, errBadPosition
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridastar.Position{}, fmt.Errorf("%w: %w", errBadPosition, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridastar.Position{}, fmt.Errorf("%w: %w", errBadPosition, err)
	}
	return gridastar.Position{Row: row, Col: col}, nil
}
