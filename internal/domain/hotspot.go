package domain

// Hotspot - точка повышенного риска на 3D-глобусе главной страницы
type Hotspot struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	Risk     string     `json:"risk"`
	Color    string     `json:"color"`
}

// Hotspots - точки на глобусе (позиции на единичной сфере)
func Hotspots() []Hotspot {
	return []Hotspot{
		{Name: "Himalayan Region", Position: [3]float64{0.8, 0.2, 0.5}, Risk: "High", Color: "#ef4444"},
		{Name: "Pacific Northwest", Position: [3]float64{-0.5, 0.3, 0.8}, Risk: "Moderate", Color: "#f59e0b"},
		{Name: "Andes Mountains", Position: [3]float64{0.1, -0.8, 0.5}, Risk: "High", Color: "#ef4444"},
		{Name: "Alps", Position: [3]float64{0.7, 0.6, -0.3}, Risk: "Moderate", Color: "#f59e0b"},
	}
}
