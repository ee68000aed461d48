package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRiskColor(t *testing.T) {
	assert.Equal(t, "#ef4444", RiskColor(RiskHigh))
	assert.Equal(t, "#f97316", RiskColor(RiskMedium))
	assert.Equal(t, "#22c55e", RiskColor(RiskLow))
	assert.Equal(t, FallbackRiskColor, RiskColor("extreme"))
	assert.Equal(t, FallbackRiskColor, RiskColor(""))
}

func TestRiskColor_DistinctPerLevel(t *testing.T) {
	seen := make(map[string]RiskLevel)
	for _, level := range RiskLevels {
		c := RiskColor(level)
		assert.NotEqual(t, FallbackRiskColor, c, level)
		if prev, dup := seen[c]; dup {
			t.Fatalf("levels %s and %s share color %s", prev, level, c)
		}
		seen[c] = level
	}
}

func TestRiskColor_UnknownLevelsFallBack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "level")
		level := RiskLevel(s)
		if level.Valid() {
			return
		}
		if RiskColor(level) != FallbackRiskColor {
			t.Fatalf("unknown level %q got %s", s, RiskColor(level))
		}
	})
}

func TestStyleForZone(t *testing.T) {
	selected := StyleForZone(RiskMedium, true)
	assert.Equal(t, ZoneStyle{Color: "#f97316", FillOpacity: 0.5, Weight: 2}, selected)

	other := StyleForZone(RiskMedium, false)
	assert.Equal(t, ZoneStyle{Color: "#f97316", FillOpacity: 0.2, Weight: 1}, other)
}

func TestPopupText(t *testing.T) {
	assert.Equal(t, "High Risk Area in Ooty, Tamil Nadu", PopupText(RiskHigh, "Ooty, Tamil Nadu"))
	assert.Equal(t, "Low Risk Area in Coonoor, Tamil Nadu", PopupText(RiskLow, "Coonoor, Tamil Nadu"))
}
