package geo

import (
	"math"

	"github.com/landslide-dashboard/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// BoxAreaSqKm - приближённая площадь бокса: ширина по средней широте на высоту.
// Для боксов размером в километры погрешность пренебрежимо мала.
func BoxAreaSqKm(b domain.BoundingBox) float64 {
	midLat := (b.MinLat + b.MaxLat) / 2
	width := HaversineDistance(midLat, b.MinLon, midLat, b.MaxLon)
	height := HaversineDistance(b.MinLat, b.MinLon, b.MaxLat, b.MinLon)
	return width * height
}
