// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/awhiting/skymosaic/catalog"
	"github.com/awhiting/skymosaic/config"
	"github.com/awhiting/skymosaic/pointing"
	"github.com/awhiting/skymosaic/spherical"
	"github.com/awhiting/skymosaic/viz"
)

const catalogFile = "skymosaic.duckdb"

var planOptions struct {
	catalogPath string
	keepLast    bool
	output      string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the pointing plan for the catalogue",
	Long: `Groups the catalogue into the smallest set of pointings the beam
allows and writes the plan as JSON, one record per pointing with its
members, centre and relative integration time.

Reads targets from --catalog if given, otherwise from the imported
catalogue database.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		targets, err := loadTargets(cfg)
		if err != nil {
			return err
		}

		plan, err := planTargets(cfg, targets)
		if err != nil {
			return err
		}

		views := viz.PlanViews(targets, plan, cfg.BeamModel())

		out, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}

		if planOptions.output == "" {
			fmt.Println(string(out))

			return nil
		}

		if err := os.WriteFile(planOptions.output, out, 0o600); err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}

		fmt.Printf("Wrote %d pointings for %d targets to %s\n", len(views), len(targets), planOptions.output)

		return nil
	},
}

// loadTargets reads the catalogue from the file given on the command
// line, or falls back to the imported database.
func loadTargets(cfg config.Config) ([]catalog.Target, error) {
	if planOptions.catalogPath != "" {
		return catalog.ReadFile(planOptions.catalogPath, cfg.Catalog.DropLast && !planOptions.keepLast)
	}

	dbpath := filepath.Join(cfg.Catalog.DbPath, catalogFile)
	if _, err := os.Stat(dbpath); err != nil {
		return nil, fmt.Errorf("no catalogue database at %s - pass --catalog or run 'catalog import' first", dbpath)
	}

	db, err := sql.Open("duckdb", dbpath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	return catalog.NewRepository(db).List()
}

// planTargets runs the planning pipeline, reporting separation-matrix
// progress when attached to a terminal.
func planTargets(cfg config.Config, targets []catalog.Target) ([]pointing.Pointing, error) {
	if len(targets) < 2 {
		return nil, fmt.Errorf("catalogue has %d targets: %w", len(targets), pointing.ErrInsufficientTargets)
	}

	points := catalog.Points(targets)

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(points),
			progressbar.OptionSetDescription("Computing separations"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	sep := spherical.NewSeparationMatrixWithProgress(points, func(int) {
		if bar != nil {
			_ = bar.Add(1)
		}
	})

	return pointing.NewPlanner(cfg.BeamModel()).PlanMatrix(points, sep)
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(
		&planOptions.catalogPath,
		"catalog",
		"",
		"Catalogue file (name ra dec per line) instead of the imported database",
	)
	planCmd.Flags().BoolVar(
		&planOptions.keepLast,
		"keep-last",
		false,
		"Keep the final catalogue record instead of dropping it as a sentinel",
	)
	planCmd.Flags().StringVarP(
		&planOptions.output,
		"output",
		"o",
		"",
		"Write the plan to a file instead of stdout",
	)
}
