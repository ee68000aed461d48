package chart

import (
	"fmt"
	"slices"

	"github.com/landslide-dashboard/internal/domain"
)

// Подписи наборов данных
const (
	FactorDatasetLabel     = "Risk Factors"
	HistoricalDatasetLabel = "Risk Score Trend"
)

// HistoricalLabels - подписи точек истории; i-я оценка соответствует i-му месяцу
var HistoricalLabels = []string{"Jan", "Feb", "Mar", "Apr", "May"}

var (
	factorBackgrounds = []string{
		"rgba(54, 162, 235, 0.6)",
		"rgba(255, 99, 132, 0.6)",
		"rgba(75, 192, 192, 0.6)",
		"rgba(255, 159, 64, 0.6)",
	}
	factorBorders = []string{
		"rgba(54, 162, 235, 1)",
		"rgba(255, 99, 132, 1)",
		"rgba(75, 192, 192, 1)",
		"rgba(255, 159, 64, 1)",
	}
)

const (
	historicalBorderColor = "rgb(75, 192, 192)"
	historicalTension     = 0.1
)

// BuildFactorDataset строит столбчатый набор факторов риска в фиксированном
// порядке domain.FactorOrder. Отсутствующий фактор - ошибка целостности данных.
func BuildFactorDataset(region *domain.Region) (domain.CategorySeries, error) {
	labels := make([]string, len(domain.FactorOrder))
	values := make([]int, len(domain.FactorOrder))

	for i, f := range domain.FactorOrder {
		v, ok := region.RiskScores.Factors[f]
		if !ok {
			return domain.CategorySeries{}, fmt.Errorf("region %q factor %q: %w", region.ID, f, domain.ErrMissingFactor)
		}
		labels[i] = f.Label()
		values[i] = v
	}

	return domain.CategorySeries{
		Label:            FactorDatasetLabel,
		Labels:           labels,
		Values:           values,
		BackgroundColors: append([]string(nil), factorBackgrounds...),
		BorderColors:     append([]string(nil), factorBorders...),
		BorderWidth:      1,
	}, nil
}

// BuildHistoricalDataset строит линейный ряд истории оценок.
// Длина истории обязана совпадать с числом подписей: ряд не обрезается и не дополняется.
func BuildHistoricalDataset(region *domain.Region) (domain.TimeSeries, error) {
	hist := region.RiskScores.Historical
	if len(hist) != len(HistoricalLabels) {
		return domain.TimeSeries{}, fmt.Errorf("region %q has %d historical scores for %d labels: %w",
			region.ID, len(hist), len(HistoricalLabels), domain.ErrSeriesLengthMismatch)
	}

	return domain.TimeSeries{
		Label:       HistoricalDatasetLabel,
		Labels:      append([]string(nil), HistoricalLabels...),
		Values:      append([]int(nil), hist...),
		BorderColor: historicalBorderColor,
		Tension:     historicalTension,
		Fill:        false,
	}, nil
}

// VerifyFactorDataset сверяет готовый набор факторов (например, из внешнего кеша) с регионом
func VerifyFactorDataset(region *domain.Region, ds domain.CategorySeries) error {
	want, err := BuildFactorDataset(region)
	if err != nil {
		return err
	}
	if !slices.Equal(ds.Labels, want.Labels) || !slices.Equal(ds.Values, want.Values) {
		return fmt.Errorf("region %q factor dataset: %w", region.ID, domain.ErrDatasetMismatch)
	}
	return nil
}

// VerifyHistoricalDataset сверяет готовый ряд с историей региона: подписи, длину и значения
func VerifyHistoricalDataset(region *domain.Region, ds domain.TimeSeries) error {
	hist := region.RiskScores.Historical
	if len(ds.Values) != len(hist) {
		return fmt.Errorf("region %q historical dataset has %d values for %d scores: %w",
			region.ID, len(ds.Values), len(hist), domain.ErrDatasetMismatch)
	}
	if !slices.Equal(ds.Labels, HistoricalLabels) || !slices.Equal(ds.Values, hist) {
		return fmt.Errorf("region %q historical dataset: %w", region.ID, domain.ErrDatasetMismatch)
	}
	return nil
}
