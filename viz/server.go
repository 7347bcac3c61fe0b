// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

// Package viz serves a local visualization of a computed pointing plan.
// It is a consumer of the planner's output, not part of it: the planner
// runs once up front and this server only renders the result.
package viz

import (
	"html/template"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awhiting/skymosaic/catalog"
	"github.com/awhiting/skymosaic/pointing"
)

// PointingView is the JSON shape of one pointing as served to the plot.
type PointingView struct {
	Members   []string `json:"members"`
	Indices   []int    `json:"indices"`
	RA        float64  `json:"ra"`
	Dec       float64  `json:"dec"`
	IntTime   float64  `json:"int_time"`
	RadiusDeg float64  `json:"radius_deg"`
}

type Server struct {
	targets []catalog.Target
	plan    []PointingView
}

// NewServer prepares a server for an already computed plan.
func NewServer(targets []catalog.Target, plan []pointing.Pointing, beam pointing.Beam) *Server {
	return &Server{targets: targets, plan: PlanViews(targets, plan, beam)}
}

// PlanViews maps the planner's output to its external JSON shape. The
// beam annotates each group with its break-even radius, which is what
// the plot draws as the beam circle; singletons get no circle.
func PlanViews(targets []catalog.Target, plan []pointing.Pointing, beam pointing.Beam) []PointingView {
	views := make([]PointingView, 0, len(plan))

	for _, p := range plan {
		view := PointingView{
			Indices: p.Members,
			RA:      p.Centre.RA(),
			Dec:     p.Centre.Dec(),
			IntTime: p.IntTime,
		}

		for _, m := range p.Members {
			view.Members = append(view.Members, targets[m].Name)
		}

		if len(p.Members) > 1 {
			view.RadiusDeg = beam.RadiusForSensitivity(1 / math.Sqrt(float64(len(p.Members))))
		}

		views = append(views, view)
	}

	return views
}

// Router builds the gin engine with the plot page and the JSON API.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("plot.html").Parse(plotHTML)))

	r.GET("/", s.plotView)
	r.GET("/api/targets", s.listTargets)
	r.GET("/api/plan", s.getPlan)

	return r
}

// Run serves the plot on addr until the process is interrupted.
// Local use only; nothing here is hardened for the open internet.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) plotView(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "plot.html", nil)
}

func (s *Server) listTargets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.targets)
}

func (s *Server) getPlan(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.plan)
}

const plotHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>skymosaic pointing plan</title>
<style>
  body { font-family: sans-serif; margin: 1em; }
  circle.target { fill: #1f77b4; }
  circle.beam { fill: #888; fill-opacity: 0.25; stroke: #444; }
  path.centre { stroke: #000; }
</style>
</head>
<body>
<h3>Pointing plan</h3>
<svg id="sky" width="900" height="600"></svg>
<script>
async function draw() {
  const targets = await (await fetch('/api/targets')).json();
  const plan = await (await fetch('/api/plan')).json();

  const svg = document.getElementById('sky');
  const ras = targets.map(t => t.ra), decs = targets.map(t => t.dec);
  const pad = 0.5;
  const ra0 = Math.min(...ras) - pad, ra1 = Math.max(...ras) + pad;
  const dec0 = Math.min(...decs) - pad, dec1 = Math.max(...decs) + pad;
  const x = ra => (ra1 - ra) / (ra1 - ra0) * 900;
  const y = dec => (dec1 - dec) / (dec1 - dec0) * 600;
  const sx = 900 / (ra1 - ra0);

  const el = (tag, attrs) => {
    const e = document.createElementNS('http://www.w3.org/2000/svg', tag);
    for (const [k, v] of Object.entries(attrs)) e.setAttribute(k, v);
    return e;
  };

  for (const p of plan) {
    if (p.radius_deg > 0) {
      svg.appendChild(el('circle', {class: 'beam', cx: x(p.ra), cy: y(p.dec), r: p.radius_deg * sx}));
    }
    const cx = x(p.ra), cy = y(p.dec);
    svg.appendChild(el('path', {class: 'centre',
      d: 'M' + (cx-4) + ' ' + (cy-4) + 'L' + (cx+4) + ' ' + (cy+4) +
         'M' + (cx-4) + ' ' + (cy+4) + 'L' + (cx+4) + ' ' + (cy-4)}));
  }

  for (const t of targets) {
    const c = el('circle', {class: 'target', cx: x(t.ra), cy: y(t.dec), r: 3});
    c.appendChild(el('title', {})).textContent = t.name;
    svg.appendChild(c);
  }
}
draw();
</script>
</body>
</html>
`
