package domain

import "fmt"

// FallbackRiskColor - нейтральный цвет для неизвестного уровня риска
const FallbackRiskColor = "#9ca3af"

// RiskColor возвращает цвет отображения уровня риска.
// Неизвестный уровень даёт нейтральный цвет, а не ошибку.
func RiskColor(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return "#ef4444"
	case RiskMedium:
		return "#f97316"
	case RiskLow:
		return "#22c55e"
	default:
		return FallbackRiskColor
	}
}

// ZoneStyle - параметры отрисовки прямоугольника зоны на карте
type ZoneStyle struct {
	Color       string  `json:"color"`
	FillOpacity float64 `json:"fill_opacity"`
	Weight      int     `json:"weight"`
}

// StyleForZone - стиль зоны; зоны выбранного региона выделяются
func StyleForZone(level RiskLevel, selected bool) ZoneStyle {
	if selected {
		return ZoneStyle{Color: RiskColor(level), FillOpacity: 0.5, Weight: 2}
	}
	return ZoneStyle{Color: RiskColor(level), FillOpacity: 0.2, Weight: 1}
}

// PopupText - текст всплывающей подсказки зоны
func PopupText(level RiskLevel, regionName string) string {
	return fmt.Sprintf("%s Risk Area in %s", level.Title(), regionName)
}
