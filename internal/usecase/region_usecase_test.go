package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/pkg/geo"
	"github.com/landslide-dashboard/internal/usecase"
	"github.com/landslide-dashboard/internal/usecase/dto"
)

func TestRegionUseCase_ListRegions(t *testing.T) {
	uc := usecase.NewRegionUseCase(newCatalog(t), zap.NewNop())

	resp := uc.ListRegions()

	require.Len(t, resp.Regions, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "coonoor", resp.DefaultRegion)
	assert.Equal(t, "coonoor", resp.Regions[0].ID)
	assert.Equal(t, "ooty", resp.Regions[1].ID)
	assert.Equal(t, "kodaikanal", resp.Regions[2].ID)
	assert.Equal(t, 82, resp.Regions[1].CurrentScore)
	assert.Equal(t, 1, resp.Regions[1].HighRiskAreas)
}

func TestRegionUseCase_GetRegion(t *testing.T) {
	uc := usecase.NewRegionUseCase(newCatalog(t), zap.NewNop())

	t.Run("known region", func(t *testing.T) {
		resp, err := uc.GetRegion("ooty")
		require.NoError(t, err)
		assert.Equal(t, "Ooty, Tamil Nadu", resp.Name)
		require.Len(t, resp.Zones, 3)
		assert.Equal(t, "#ef4444", resp.Zones[0].Color)
		assert.Equal(t, "High Risk Area in Ooty, Tamil Nadu", resp.Zones[0].Popup)
		assert.Equal(t, "#f97316", resp.Zones[1].Color)
		assert.Equal(t, "#22c55e", resp.Zones[2].Color)
	})

	t.Run("unknown region", func(t *testing.T) {
		resp, err := uc.GetRegion("atlantis")
		assert.ErrorIs(t, err, domain.ErrRegionNotFound)
		assert.Nil(t, resp)
	})
}

func TestRegionUseCase_Bounds(t *testing.T) {
	c := newCatalog(t)
	uc := usecase.NewRegionUseCase(c, zap.NewNop())

	overall, err := uc.OverallBounds()
	require.NoError(t, err)
	for _, r := range c.Regions() {
		assert.True(t, overall.Bounds.Contains(r.Bounds), "overall bounds must contain %s", r.ID)
	}
	assert.Equal(t, overall.Bounds.Corners(), overall.Corners)

	focus, err := uc.FocusBounds("kodaikanal")
	require.NoError(t, err)
	assert.Equal(t, domain.BoundingBox{MinLat: 10.2330, MinLon: 77.4840, MaxLat: 10.2430, MaxLon: 77.4920}, focus.Bounds)
	assert.Equal(t, geo.DefaultFitOptions(), focus.Fit)

	_, err = uc.FocusBounds("atlantis")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRegionUseCase_Overlay(t *testing.T) {
	uc := usecase.NewRegionUseCase(newCatalog(t), zap.NewNop())

	t.Run("all levels, ooty selected", func(t *testing.T) {
		resp, err := uc.Overlay(dto.OverlayRequest{Selected: "ooty"})
		require.NoError(t, err)
		require.Len(t, resp.Zones, 9)

		for _, z := range resp.Zones {
			if z.RegionID == "ooty" {
				assert.Equal(t, 0.5, z.Style.FillOpacity)
				assert.Equal(t, 2, z.Style.Weight)
			} else {
				assert.Equal(t, 0.2, z.Style.FillOpacity)
				assert.Equal(t, 1, z.Style.Weight)
			}
			assert.Equal(t, domain.RiskColor(z.Risk), z.Style.Color)
		}
	})

	t.Run("risk filter", func(t *testing.T) {
		resp, err := uc.Overlay(dto.OverlayRequest{Risk: "low, HIGH"})
		require.NoError(t, err)
		assert.Equal(t, []domain.RiskLevel{domain.RiskHigh, domain.RiskLow}, resp.Levels)
		assert.Len(t, resp.Zones, 6)
		for _, z := range resp.Zones {
			assert.NotEqual(t, domain.RiskMedium, z.Risk)
		}
	})

	t.Run("invalid risk", func(t *testing.T) {
		_, err := uc.Overlay(dto.OverlayRequest{Risk: "extreme"})
		assert.ErrorIs(t, err, domain.ErrInvalidRiskLevel)
	})

	t.Run("unknown selected region", func(t *testing.T) {
		_, err := uc.Overlay(dto.OverlayRequest{Selected: "atlantis"})
		assert.ErrorIs(t, err, domain.ErrRegionNotFound)
	})
}

func TestRegionUseCase_RiskLevels(t *testing.T) {
	uc := usecase.NewRegionUseCase(newCatalog(t), zap.NewNop())

	legend := uc.RiskLevels()
	require.Len(t, legend, 3)
	assert.Equal(t, dto.RiskLevelLegend{Level: domain.RiskHigh, Label: "High Risk", Color: "#ef4444"}, legend[0])
	assert.Equal(t, "Medium Risk", legend[1].Label)
	assert.Equal(t, "#22c55e", legend[2].Color)

	assert.Len(t, uc.Hotspots(), 4)
}
