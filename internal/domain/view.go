package domain

import (
	"fmt"
	"strings"
)

// View - активная вкладка дашборда
type View string

const (
	ViewMap       View = "map"
	ViewAnalytics View = "analytics"
	ViewSettings  View = "settings"
)

var Views = []View{ViewMap, ViewAnalytics, ViewSettings}

func (v View) Valid() bool {
	switch v {
	case ViewMap, ViewAnalytics, ViewSettings:
		return true
	}
	return false
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
	return v, nil
}

// BaseLayer - подложка карты
type BaseLayer string

const (
	LayerStreet    BaseLayer = "street"
	LayerSatellite BaseLayer = "satellite"
	LayerTerrain   BaseLayer = "terrain"
)

func (l BaseLayer) Valid() bool {
	switch l {
	case LayerStreet, LayerSatellite, LayerTerrain:
		return true
	}
	return false
}

func ParseBaseLayer(s string) (BaseLayer, error) {
	l := BaseLayer(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseLayer, s)
	}
	return l, nil
}

// TileURL - шаблон URL тайлов подложки
func (l BaseLayer) TileURL() string {
	switch l {
	case LayerSatellite:
		return "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"
	case LayerTerrain:
		return "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png"
	default:
		return "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	}
}
