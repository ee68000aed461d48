package catalog

import (
	"fmt"

	"github.com/landslide-dashboard/internal/config"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/repository/file"
	"github.com/landslide-dashboard/internal/repository/postgres"
	"github.com/landslide-dashboard/internal/repository/static"
	"go.uber.org/zap"
)

// NewSource выбирает источник каталога по CATALOG_SOURCE.
// Возвращаемая функция закрывает ресурсы источника (для postgres - пул соединений).
func NewSource(cfg *config.Config, logger *zap.Logger) (repository.RegionRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return static.NewRegionRepository(), noop, nil
	case config.CatalogSourceYAML:
		return file.NewRegionRepository(cfg.Catalog.File, logger), noop, nil
	case config.CatalogSourcePostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRegionRepository(db, logger), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
