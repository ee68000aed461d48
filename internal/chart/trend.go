package chart

import (
	"math"

	"github.com/landslide-dashboard/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// stableSlope - наклон (пунктов в месяц), ниже которого тренд считается стабильным
const stableSlope = 0.5

// Trend считает среднее, стандартное отклонение и наклон МНК по ряду оценок.
// Точки ряда равноотстоящие: x = 0, 1, 2, ...
func Trend(values []int) domain.TrendStats {
	if len(values) == 0 {
		return domain.TrendStats{Direction: domain.TrendStable}
	}

	xs := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(i)
		ys[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(ys, nil)
	if len(values) < 2 {
		return domain.TrendStats{Mean: mean, Direction: domain.TrendStable}
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)

	direction := domain.TrendStable
	switch {
	case slope >= stableSlope:
		direction = domain.TrendRising
	case slope <= -stableSlope:
		direction = domain.TrendFalling
	}

	return domain.TrendStats{
		Mean:      round2(mean),
		StdDev:    round2(std),
		Slope:     round2(slope),
		Direction: direction,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
