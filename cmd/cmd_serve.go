// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awhiting/skymosaic/viz"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Plan the catalogue and serve the plot locally",
	Args:  cobra.NoArgs,
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

		fmt.Printf("Planned %d pointings for %d targets\n", len(plan), len(targets))
		fmt.Printf("Open http://%s in your browser\n", cfg.Serve.Addr)

		return viz.NewServer(targets, plan, cfg.BeamModel()).Run(cfg.Serve.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(
		&planOptions.catalogPath,
		"catalog",
		"",
		"Catalogue file (name ra dec per line) instead of the imported database",
	)
}
