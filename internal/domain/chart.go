package domain

// CategorySeries - набор данных для столбчатой диаграммы факторов риска
type CategorySeries struct {
	Label            string   `json:"label"`
	Labels           []string `json:"labels"`
	Values           []int    `json:"values"`
	BackgroundColors []string `json:"background_colors"`
	BorderColors     []string `json:"border_colors"`
	BorderWidth      int      `json:"border_width"`
}

// TimeSeries - набор данных для линейного графика истории оценок
type TimeSeries struct {
	Label       string   `json:"label"`
	Labels      []string `json:"labels"`
	Values      []int    `json:"values"`
	BorderColor string   `json:"border_color"`
	Tension     float64  `json:"tension"`
	Fill        bool     `json:"fill"`
}

// TrendDirection - направление тренда исторических оценок
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
)

// TrendStats - статистика по историческому ряду
type TrendStats struct {
	Mean      float64        `json:"mean"`
	StdDev    float64        `json:"std_dev"`
	Slope     float64        `json:"slope"`
	Direction TrendDirection `json:"direction"`
}

// RegionSummary - карточки аналитики региона
type RegionSummary struct {
	RegionID      string         `json:"region_id"`
	RegionName    string         `json:"region_name"`
	CurrentScore  int            `json:"current_score"`
	HighRiskAreas int            `json:"high_risk_areas"`
	ZonesByRisk   map[string]int `json:"zones_by_risk"`
	Trend         TrendStats     `json:"trend"`
	FocusAreaSqKm float64        `json:"focus_area_sq_km"`
}
