// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/awhiting/skymosaic/config"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})

	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Path to a YAML configuration file (defaults apply when omitted)",
	)
}

var rootCmd = &cobra.Command{
	Use:   "skymosaic",
	Short: "group sky targets into shared telescope pointings",
	Long: `
skymosaic reduces the number of telescope pointings needed to observe a
target catalogue. Targets close enough to share a single primary beam
within an acceptable sensitivity loss are grouped into one pointing;
everything else is observed individually.
`,
}

var configPath string

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
