package maze

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// DefaultGridSpacing is the SVG pixel size of one grid cell.
const DefaultGridSpacing = 5

// zoneColors is the background palette for zoned regions; a region's
// zone id indexes it modulo its length.
var zoneColors = []string{
	"blanchedalmond", "lightgreen", "lightsteelblue", "palegoldenrod",
	"plum", "lightcyan", "peru", "sandybrown", "lightpink",
	"lavender", "honeydew", "thistle",
}

const svgTextColor = "indigo"

// RenderSVG draws the graph for inspection: zone-colored region
// backgrounds, the cell grid, heavy region outlines with id labels, hub
// markers, and the bounding box. gridSpacing scales grid cells to
// pixels; pass DefaultGridSpacing when in doubt.
func (g *Graph) RenderSVG(w io.Writer, gridSpacing int) {
	if gridSpacing < 1 {
		gridSpacing = DefaultGridSpacing
	}
	canvas := svg.New(w)
	canvas.Start(g.Width*gridSpacing, g.Height*gridSpacing)

	// Zone backgrounds go first so everything else draws over them.
	for _, r := range g.Regions {
		if r.Zone < 0 {
			continue
		}
		color := zoneColors[r.Zone%len(zoneColors)]
		canvas.Rect(r.X*gridSpacing, r.Y*gridSpacing, r.W*gridSpacing, r.H*gridSpacing,
			fmt.Sprintf("fill:%s;stroke:none", color))
	}

	gridStyle := "stroke:gray;stroke-width:1"
	for x := 0; x <= g.Width; x++ {
		canvas.Line(x*gridSpacing, 0, x*gridSpacing, g.Height*gridSpacing, gridStyle)
	}
	for y := 0; y <= g.Height; y++ {
		canvas.Line(0, y*gridSpacing, g.Width*gridSpacing, y*gridSpacing, gridStyle)
	}

	labelStyle := fmt.Sprintf(
		"fill:%s;stroke:none;font-size:14px;font-family:Arial;font-weight:bold", svgTextColor)
	for _, r := range g.Regions {
		canvas.Rect(r.X*gridSpacing, r.Y*gridSpacing, r.W*gridSpacing, r.H*gridSpacing,
			"fill:none;stroke:black;stroke-width:3")
		canvas.Text(r.X*gridSpacing+4, r.Y*gridSpacing+18, fmt.Sprintf("%d", r.ID), labelStyle)
		for _, hub := range g.HubList(r.X, r.Y, r.W, r.H) {
			canvas.Rect(hub[0]*gridSpacing, hub[1]*gridSpacing, gridSpacing, gridSpacing,
				"fill:red;stroke:lightgray")
		}
	}

	canvas.Rect(0, 0, g.Width*gridSpacing, g.Height*gridSpacing, "fill:none;stroke:black;stroke-width:3")
	canvas.End()
}
