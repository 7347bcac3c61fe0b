// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"

	"github.com/awhiting/skymosaic/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the imported target catalogue",
}

// openCatalogDB opens (creating if needed) the catalogue database under
// the configured path and guarantees the schema exists.
func openCatalogDB() (*sql.DB, catalog.Repository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.Catalog.DbPath, 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("duckdb", filepath.Join(cfg.Catalog.DbPath, catalogFile))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	repo := catalog.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		db.Close()

		return nil, nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, repo, nil
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalogue file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		targets, err := catalog.ReadFile(args[0], cfg.Catalog.DropLast)
		if err != nil {
			return err
		}

		db, repo, err := openCatalogDB()
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := repo.Upsert(targets)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d new targets (%d in file)\n", n, len(targets))

		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the imported targets",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, repo, err := openCatalogDB()
		if err != nil {
			return err
		}
		defer db.Close()

		targets, err := repo.List()
		if err != nil {
			return err
		}

		printTargets(targets)

		return nil
	},
}

var catalogNearCmd = &cobra.Command{
	Use:   "near <ra> <dec> <radius>",
	Short: "List targets within a radius of a position (degrees)",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		var pos [3]float64

		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", arg, err)
			}

			pos[i] = v
		}

		db, repo, err := openCatalogDB()
		if err != nil {
			return err
		}
		defer db.Close()

		targets, err := repo.Near(pos[0], pos[1], pos[2])
		if err != nil {
			return err
		}

		printTargets(targets)

		return nil
	},
}

func printTargets(targets []catalog.Target) {
	a, b := strings.Repeat("─", 20), strings.Repeat("─", 12)
	fmt.Printf("╭─%-20s─┬─%-12s─┬─%-12s─╮\n", a, b, b)
	fmt.Printf("│ %-20s │ %12s │ %12s │\n", "Target", "RA (deg)", "Dec (deg)")
	fmt.Printf("├─%-20s─┼─%-12s─┼─%-12s─┤\n", a, b, b)

	for _, t := range targets {
		fmt.Printf("│ %-20s │ %12.5f │ %12.5f │\n", t.Name, t.RA, t.Dec)
	}

	fmt.Printf("╰─%-20s─┴─%-12s─┴─%-12s─╯\n", a, b, b)
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogNearCmd)
}
