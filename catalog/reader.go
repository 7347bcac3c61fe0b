// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadFile loads a catalogue file: one target per line, either
// whitespace- or comma-separated, columns name/ra/dec in degrees. Lines
// starting with '#' and a leading header row are skipped.
//
// With dropLast set, the final record is discarded. Survey catalogues by
// convention end with a sentinel or calibrator row that is not a science
// target; honouring that is the caller's call, not the planner's.
func ReadFile(path string, dropLast bool) ([]Target, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}

	var (
		targets       []Target
		headerSkipped bool
	)

	seen := make(map[string]bool)

	for lineno, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var fields []string
		if strings.Contains(line, ",") {
			for _, f := range strings.Split(line, ",") {
				fields = append(fields, strings.TrimSpace(f))
			}
		} else {
			fields = strings.Fields(line)
		}

		if len(fields) < 3 {
			return nil, fmt.Errorf("catalogue %s line %d: want name, ra, dec; got %q", path, lineno+1, line)
		}

		ra, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			if len(targets) == 0 && !headerSkipped {
				headerSkipped = true

				continue
			}

			return nil, fmt.Errorf("catalogue %s line %d: bad ra %q: %w", path, lineno+1, fields[1], err)
		}

		dec, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("catalogue %s line %d: bad dec %q: %w", path, lineno+1, fields[2], err)
		}

		if seen[fields[0]] {
			return nil, fmt.Errorf("catalogue %s line %d: duplicate target %q", path, lineno+1, fields[0])
		}

		seen[fields[0]] = true

		targets = append(targets, Target{Name: fields[0], RA: ra, Dec: dec})
	}

	if dropLast && len(targets) > 0 {
		targets = targets[:len(targets)-1]
	}

	return targets, nil
}
