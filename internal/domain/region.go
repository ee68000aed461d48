package domain

import (
	"fmt"
	"strings"
)

// RiskLevel - дискретный уровень риска зоны
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// RiskLevels - все уровни в порядке убывания риска (порядок легенды)
var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow}

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// Title - "High", "Medium", "Low"
func (l RiskLevel) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// ParseRiskLevel разбирает уровень риска без учёта регистра
func ParseRiskLevel(s string) (RiskLevel, error) {
	l := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRiskLevel, s)
	}
	return l, nil
}

// Factor - фактор, влияющий на оценку риска
type Factor string

const (
	FactorRainfall   Factor = "rainfall"
	FactorSlope      Factor = "slope"
	FactorVegetation Factor = "vegetation"
	FactorGeology    Factor = "geology"
)

// FactorOrder - фиксированный порядок категорий на графике факторов.
// Не зависит от порядка ключей в map.
var FactorOrder = []Factor{FactorRainfall, FactorSlope, FactorVegetation, FactorGeology}

// Label - подпись категории на графике
func (f Factor) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// RiskZone - участок региона с дискретным уровнем риска
type RiskZone struct {
	Bounds BoundingBox `json:"bounds"`
	Risk   RiskLevel   `json:"risk" validate:"required,oneof=high medium low"`
}

// RiskScoreRecord - оценки риска региона (проценты 0..100)
type RiskScoreRecord struct {
	Current    int            `json:"current" validate:"min=0,max=100"`
	Historical []int          `json:"historical" validate:"required,min=1,dive,min=0,max=100"`
	Factors    map[Factor]int `json:"factors" validate:"required,dive,min=0,max=100"`
}

// Region - именованная территория с зонами риска и оценками
type Region struct {
	ID         string          `json:"id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Center     Point           `json:"center"`
	Bounds     BoundingBox     `json:"bounds"`
	RiskZones  []RiskZone      `json:"risk_zones" validate:"dive"`
	RiskScores RiskScoreRecord `json:"risk_scores"`
}

// ZoneCount возвращает количество зон заданного уровня
func (r *Region) ZoneCount(level RiskLevel) int {
	n := 0
	for _, z := range r.RiskZones {
		if z.Risk == level {
			n++
		}
	}
	return n
}

// HighRiskZoneCount - количество зон высокого риска (карточка "High Risk Areas")
func (r *Region) HighRiskZoneCount() int {
	return r.ZoneCount(RiskHigh)
}
