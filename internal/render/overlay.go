package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/landslide-dashboard/internal/domain"
)

const (
	colorBackdrop = "#f8fafc"
	colorFrame    = "#cbd5e1"
	colorText     = "#0f172a"
	colorSubtle   = "#475569"
	fontFamily    = "font-family:sans-serif"
)

// Viewport - размер холста и отступ рамки в пикселях
type Viewport struct {
	Width   int
	Height  int
	Padding int
}

// DefaultViewport совпадает с отступом перелёта карты (50px)
var DefaultViewport = Viewport{Width: 640, Height: 480, Padding: 50}

// Zone - прямоугольник зоны со стилем отрисовки
type Zone struct {
	Bounds domain.BoundingBox
	Risk   domain.RiskLevel
	Style  domain.ZoneStyle
}

// OverlayOptions - параметры превью слоя зон
type OverlayOptions struct {
	Title    string
	Frame    domain.BoundingBox
	Zones    []Zone
	Legend   bool
	Viewport Viewport
}

// projector переводит координаты в пиксели с сохранением пропорций бокса
type projector struct {
	frame  domain.BoundingBox
	scale  float64
	offX   float64
	offY   float64
	height int
}

func newProjector(frame domain.BoundingBox, vp Viewport) projector {
	spanLon := math.Max(frame.MaxLon-frame.MinLon, 1e-9)
	spanLat := math.Max(frame.MaxLat-frame.MinLat, 1e-9)

	innerW := float64(vp.Width - 2*vp.Padding)
	innerH := float64(vp.Height - 2*vp.Padding)
	scale := math.Min(innerW/spanLon, innerH/spanLat)

	return projector{
		frame:  frame,
		scale:  scale,
		offX:   float64(vp.Padding) + (innerW-spanLon*scale)/2,
		offY:   float64(vp.Padding) + (innerH-spanLat*scale)/2,
		height: vp.Height,
	}
}

// rect возвращает x, y, w, h; север сверху
func (p projector) rect(b domain.BoundingBox) (int, int, int, int) {
	x := p.offX + (b.MinLon-p.frame.MinLon)*p.scale
	y := p.offY + (p.frame.MaxLat-b.MaxLat)*p.scale
	w := (b.MaxLon - b.MinLon) * p.scale
	h := (b.MaxLat - b.MinLat) * p.scale
	return int(math.Round(x)), int(math.Round(y)), max(1, int(math.Round(w))), max(1, int(math.Round(h)))
}

// Overlay рисует зоны в рамке Frame. Зоны рисуются в переданном порядке.
func Overlay(opts OverlayOptions) []byte {
	vp := opts.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		vp = DefaultViewport
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+colorBackdrop)
	canvas.Rect(vp.Padding, vp.Padding, vp.Width-2*vp.Padding, vp.Height-2*vp.Padding,
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:1;stroke-dasharray:4 4", colorFrame))

	if opts.Title != "" {
		canvas.Text(vp.Padding, 30, opts.Title, fmt.Sprintf("fill:%s;font-size:16px;font-weight:bold;%s", colorText, fontFamily))
	}

	proj := newProjector(opts.Frame, vp)
	for _, z := range opts.Zones {
		x, y, w, h := proj.rect(z.Bounds)
		canvas.Rect(x, y, w, h, fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-width:%d",
			z.Style.Color, z.Style.FillOpacity, z.Style.Color, z.Style.Weight))
	}

	if opts.Legend {
		drawLegend(canvas, vp)
	}

	canvas.End()
	return buf.Bytes()
}

func drawLegend(canvas *svg.SVG, vp Viewport) {
	const rowH = 20
	boxW, boxH := 130, 28+rowH*len(domain.RiskLevels)
	x, y := vp.Width-boxW-10, vp.Height-boxH-10

	canvas.Roundrect(x, y, boxW, boxH, 6, 6, fmt.Sprintf("fill:#ffffff;stroke:%s;stroke-width:1", colorFrame))
	canvas.Text(x+10, y+18, "Risk Levels", fmt.Sprintf("fill:%s;font-size:12px;font-weight:bold;%s", colorText, fontFamily))

	for i, l := range domain.RiskLevels {
		ry := y + 36 + i*rowH
		canvas.Roundrect(x+10, ry-10, 12, 12, 2, 2, "fill:"+domain.RiskColor(l))
		canvas.Text(x+28, ry, l.Title()+" Risk", fmt.Sprintf("fill:%s;font-size:11px;%s", colorSubtle, fontFamily))
	}
}
