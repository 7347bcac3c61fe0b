// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uber/h3-go/v4"

	"github.com/awhiting/skymosaic/spherical"
)

// h3MaxRes is the finest sky-cell resolution stored per target. The
// celestial sphere is indexed exactly like the terrestrial one, with
// declination as latitude and right ascension as longitude; only the
// angular scale of the cells matters here, not their metric size.
const h3MaxRes = 4

// approxCellDeg maps an H3 resolution to a conservative angular radius
// (degrees) fully covered by one grid disk around a cell at that
// resolution. Used to pick the coarsest resolution that can prefilter a
// cone search of a given radius.
var approxCellDeg = [h3MaxRes + 1]float64{10.0, 4.0, 1.5, 0.55, 0.2}

// Repository persists the target catalogue.
type Repository interface {
	// CreateSchema creates the targets table.
	CreateSchema() error

	// Upsert inserts targets that are not yet present, identified by
	// name, and returns the number inserted. Catalogue order is kept.
	Upsert(targets []Target) (int, error)

	// List returns all targets in insertion order.
	List() ([]Target, error)

	// Count returns the number of stored targets.
	Count() (int, error)

	// Near returns the targets within radiusDeg of the given position,
	// in insertion order. The H3 sky cells prefilter the candidates; the
	// exact great-circle separation decides.
	Near(raDeg, decDeg, radiusDeg float64) ([]Target, error)

	// DB returns the underlying database connection.
	DB() *sql.DB
}

type sqlTargetRepository struct {
	db *sql.DB
}

// NewRepository creates a duckdb-backed catalogue repository.
func NewRepository(db *sql.DB) Repository {
	return &sqlTargetRepository{db: db}
}

func (r *sqlTargetRepository) DB() *sql.DB {
	return r.db
}

func (r *sqlTargetRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE SEQUENCE IF NOT EXISTS targets_seq START 1;

		CREATE TABLE IF NOT EXISTS targets (
			id INTEGER PRIMARY KEY DEFAULT nextval('targets_seq'),
			name VARCHAR NOT NULL UNIQUE,
			ra_deg DOUBLE NOT NULL,
			dec_deg DOUBLE NOT NULL,
			h3_res0 UBIGINT,
			h3_res1 UBIGINT,
			h3_res2 UBIGINT,
			h3_res3 UBIGINT,
			h3_res4 UBIGINT
		);
	`)

	return err
}

// skyCells returns the H3 cell of the position at every stored
// resolution. Right ascension is shifted into the longitude range.
func skyCells(raDeg, decDeg float64) ([h3MaxRes + 1]uint64, error) {
	var cells [h3MaxRes + 1]uint64

	lng := raDeg
	if lng >= 180 {
		lng -= 360
	}

	latLng := h3.NewLatLng(decDeg, lng)

	for res := 0; res <= h3MaxRes; res++ {
		cell, err := h3.LatLngToCell(latLng, res)
		if err != nil {
			return cells, fmt.Errorf("indexing sky cell at res %d: %w", res, err)
		}

		cells[res] = uint64(cell)
	}

	return cells, nil
}

func (r *sqlTargetRepository) Upsert(targets []Target) (int, error) {
	var n int

	for _, t := range targets {
		cells, err := skyCells(t.RA, t.Dec)
		if err != nil {
			return n, err
		}

		res, err := r.db.Exec(`
			INSERT INTO targets (name, ra_deg, dec_deg, h3_res0, h3_res1, h3_res2, h3_res3, h3_res4)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (name) DO NOTHING
		`, t.Name, t.RA, t.Dec, cells[0], cells[1], cells[2], cells[3], cells[4])
		if err != nil {
			return n, fmt.Errorf("upserting target %s: %w", t.Name, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return n, err
		}

		n += int(rows)
	}

	return n, nil
}

func (r *sqlTargetRepository) List() ([]Target, error) {
	rows, err := r.db.Query(`SELECT name, ra_deg, dec_deg FROM targets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}
	defer rows.Close()

	return scanTargets(rows)
}

func (r *sqlTargetRepository) Count() (int, error) {
	var n int

	err := r.db.QueryRow(`SELECT COUNT(*) FROM targets`).Scan(&n)

	return n, err
}

func (r *sqlTargetRepository) Near(raDeg, decDeg, radiusDeg float64) ([]Target, error) {
	// Coarsest resolution whose grid disk still covers the cone.
	res := 0
	for res < h3MaxRes && approxCellDeg[res+1] >= radiusDeg {
		res++
	}

	lng := raDeg
	if lng >= 180 {
		lng -= 360
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(decDeg, lng), res)
	if err != nil {
		return nil, fmt.Errorf("indexing search cell: %w", err)
	}

	disk, err := h3.GridDisk(cell, 1)
	if err != nil {
		return nil, fmt.Errorf("expanding search cell: %w", err)
	}

	placeholders := make([]string, len(disk))
	args := make([]any, len(disk))

	for i, c := range disk {
		placeholders[i] = "?"
		args[i] = uint64(c)
	}

	query := fmt.Sprintf(
		`SELECT name, ra_deg, dec_deg FROM targets WHERE h3_res%d IN (%s) ORDER BY id`,
		res, strings.Join(placeholders, ", "),
	)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying near targets: %w", err)
	}
	defer rows.Close()

	candidates, err := scanTargets(rows)
	if err != nil {
		return nil, err
	}

	centre := spherical.NewPoint(raDeg, decDeg)

	var near []Target

	for _, t := range candidates {
		if centre.Separation(t.Point()) <= radiusDeg {
			near = append(near, t)
		}
	}

	return near, nil
}

func scanTargets(rows *sql.Rows) ([]Target, error) {
	var targets []Target

	for rows.Next() {
		var t Target
		if err := rows.Scan(&t.Name, &t.RA, &t.Dec); err != nil {
			return nil, fmt.Errorf("scanning target: %w", err)
		}

		targets = append(targets, t)
	}

	return targets, rows.Err()
}
