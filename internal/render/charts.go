package render

import (
	"bytes"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/landslide-dashboard/internal/domain"
)

// Оценки риска - проценты, поэтому ось Y всегда 0..100
const axisMax = 100

type plotArea struct {
	left, top, width, height int
}

func chartPlot(vp Viewport) plotArea {
	return plotArea{
		left:   vp.Padding,
		top:    vp.Padding,
		width:  vp.Width - 2*vp.Padding,
		height: vp.Height - 2*vp.Padding,
	}
}

func (p plotArea) y(v int) int {
	return p.top + p.height - v*p.height/axisMax
}

func drawAxes(canvas *svg.SVG, p plotArea) {
	axis := fmt.Sprintf("stroke:%s;stroke-width:1", colorSubtle)
	grid := fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:2 4", colorFrame)
	label := fmt.Sprintf("fill:%s;font-size:11px;text-anchor:end;%s", colorSubtle, fontFamily)

	for v := 0; v <= axisMax; v += 20 {
		y := p.y(v)
		if v > 0 {
			canvas.Line(p.left, y, p.left+p.width, y, grid)
		}
		canvas.Text(p.left-6, y+4, strconv.Itoa(v), label)
	}
	canvas.Line(p.left, p.top, p.left, p.top+p.height, axis)
	canvas.Line(p.left, p.top+p.height, p.left+p.width, p.top+p.height, axis)
}

func startChart(vp Viewport, title string) (*bytes.Buffer, *svg.SVG) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:#ffffff")
	canvas.Text(vp.Padding, 30, title, fmt.Sprintf("fill:%s;font-size:16px;font-weight:bold;%s", colorText, fontFamily))
	return &buf, canvas
}

// BarChart рисует столбчатую диаграмму набора факторов
func BarChart(ds domain.CategorySeries, vp Viewport) []byte {
	if vp.Width == 0 || vp.Height == 0 {
		vp = DefaultViewport
	}
	buf, canvas := startChart(vp, ds.Label)
	p := chartPlot(vp)
	drawAxes(canvas, p)

	n := len(ds.Values)
	if n > 0 {
		slot := p.width / n
		barW := slot * 3 / 5
		for i, v := range ds.Values {
			x := p.left + i*slot + (slot-barW)/2
			y := p.y(v)
			canvas.Rect(x, y, barW, p.top+p.height-y, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d",
				pick(ds.BackgroundColors, i), pick(ds.BorderColors, i), ds.BorderWidth))
			canvas.Text(x+barW/2, y-6, strconv.Itoa(v),
				fmt.Sprintf("fill:%s;font-size:11px;text-anchor:middle;%s", colorText, fontFamily))
			if i < len(ds.Labels) {
				canvas.Text(x+barW/2, p.top+p.height+18, ds.Labels[i],
					fmt.Sprintf("fill:%s;font-size:12px;text-anchor:middle;%s", colorSubtle, fontFamily))
			}
		}
	}

	canvas.End()
	return buf.Bytes()
}

// LineChart рисует линейный график истории оценок
func LineChart(ds domain.TimeSeries, vp Viewport) []byte {
	if vp.Width == 0 || vp.Height == 0 {
		vp = DefaultViewport
	}
	buf, canvas := startChart(vp, ds.Label)
	p := chartPlot(vp)
	drawAxes(canvas, p)

	n := len(ds.Values)
	if n > 0 {
		step := 0
		if n > 1 {
			step = p.width / (n - 1)
		}
		xs := make([]int, n)
		ys := make([]int, n)
		for i, v := range ds.Values {
			xs[i] = p.left + i*step
			ys[i] = p.y(v)
		}

		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", ds.BorderColor))
		for i := range xs {
			canvas.Circle(xs[i], ys[i], 3, "fill:"+ds.BorderColor)
			if i < len(ds.Labels) {
				canvas.Text(xs[i], p.top+p.height+18, ds.Labels[i],
					fmt.Sprintf("fill:%s;font-size:12px;text-anchor:middle;%s", colorSubtle, fontFamily))
			}
		}
	}

	canvas.End()
	return buf.Bytes()
}

func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return domain.FallbackRiskColor
	}
	return colors[i%len(colors)]
}
