// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package viz

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awhiting/skymosaic/catalog"
	"github.com/awhiting/skymosaic/pointing"
)

func testPlan(t *testing.T) ([]catalog.Target, []pointing.Pointing, pointing.Beam) {
	t.Helper()

	targets := []catalog.Target{
		{Name: "a", RA: 10, Dec: 10},
		{Name: "b", RA: 10, Dec: 10.01},
		{Name: "c", RA: 50, Dec: -20},
	}

	beam := pointing.DefaultBeam()

	plan, err := pointing.NewPlanner(beam).Plan(catalog.Points(targets))
	require.NoError(t, err)

	return targets, plan, beam
}

func TestPlanViews(t *testing.T) {
	targets, plan, beam := testPlan(t)

	views := PlanViews(targets, plan, beam)
	require.Len(t, views, 2)

	var pair, single *PointingView

	for i := range views {
		switch len(views[i].Members) {
		case 2:
			pair = &views[i]
		case 1:
			single = &views[i]
		}
	}

	require.NotNil(t, pair)
	require.NotNil(t, single)

	assert.ElementsMatch(t, []string{"a", "b"}, pair.Members)
	assert.ElementsMatch(t, []int{0, 1}, pair.Indices)
	assert.InDelta(t, 10, pair.RA, 1e-6)
	assert.InDelta(t, 10.005, pair.Dec, 1e-6)
	assert.InDelta(t, beam.RadiusForSensitivity(1/math.Sqrt2), pair.RadiusDeg, 1e-12)

	assert.Equal(t, []string{"c"}, single.Members)
	assert.Equal(t, 1.0, single.IntTime)
	assert.Zero(t, single.RadiusDeg, "singletons carry no beam circle")
}

func setupServerTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	targets, plan, beam := testPlan(t)

	return NewServer(targets, plan, beam).Router()
}

func TestTargetsAPI(t *testing.T) {
	router := setupServerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/targets", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var targets []catalog.Target
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &targets))
	assert.Len(t, targets, 3)
	assert.Equal(t, "a", targets[0].Name)
}

func TestPlanAPI(t *testing.T) {
	router := setupServerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/plan", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var views []PointingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)

	covered := 0
	for _, v := range views {
		covered += len(v.Indices)
	}

	assert.Equal(t, 3, covered)
}

func TestPlotViewServesHTML(t *testing.T) {
	router := setupServerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "svg"), "plot page should embed the svg")
}
