package repository

import (
	"context"

	"github.com/landslide-dashboard/internal/domain"
)

// RegionRepository - источник каталога регионов. Читается один раз при старте.
type RegionRepository interface {
	// LoadRegions возвращает регионы в каноническом порядке отображения
	LoadRegions(ctx context.Context) ([]domain.Region, error)

	// Source возвращает имя источника (static, file, postgres)
	Source() string
}
