package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/pkg/validator"
	"go.uber.org/zap"
)

// Catalog - неизменяемое отображение id региона -> Region
type Catalog struct {
	regions     []domain.Region
	index       map[string]int
	defaultID   string
	source      string
	fingerprint string
}

// Load читает регионы из источника и строит каталог
func Load(ctx context.Context, repo repository.RegionRepository, defaultID string, logger *zap.Logger) (*Catalog, error) {
	regions, err := repo.LoadRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load regions from %s: %w", repo.Source(), err)
	}

	c, err := New(regions, defaultID)
	if err != nil {
		return nil, fmt.Errorf("build catalog from %s: %w", repo.Source(), err)
	}
	c.source = repo.Source()

	for _, r := range c.regions {
		for i, z := range r.RiskZones {
			if !r.Bounds.Intersects(z.Bounds) {
				logger.Warn("Risk zone lies outside its region bounds",
					zap.String("region_id", r.ID),
					zap.Int("zone_index", i),
				)
			}
		}
	}

	logger.Info("Region catalog loaded",
		zap.String("source", c.source),
		zap.Int("regions", len(c.regions)),
		zap.String("default_region", c.defaultID),
	)

	return c, nil
}

// New строит каталог из списка регионов. Пустой defaultID означает первый регион.
func New(regions []domain.Region, defaultID string) (*Catalog, error) {
	if len(regions) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	c := &Catalog{
		regions: make([]domain.Region, 0, len(regions)),
		index:   make(map[string]int, len(regions)),
		source:  "memory",
	}

	for i := range regions {
		r := cloneRegion(regions[i])
		if err := validator.Validate(&r); err != nil {
			return nil, fmt.Errorf("region %q: %w", r.ID, err)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("duplicate region id %q", r.ID)
		}
		c.index[r.ID] = len(c.regions)
		c.regions = append(c.regions, r)
	}

	if defaultID == "" {
		defaultID = c.regions[0].ID
	}
	if _, ok := c.index[defaultID]; !ok {
		return nil, fmt.Errorf("default region %q: %w", defaultID, domain.ErrRegionNotFound)
	}
	c.defaultID = defaultID

	// карты факторов сериализуются с отсортированными ключами
	data, err := json.Marshal(c.regions)
	if err != nil {
		return nil, fmt.Errorf("fingerprint catalog: %w", err)
	}
	c.fingerprint = strconv.FormatUint(xxhash.Sum64(data), 16)

	return c, nil
}

// Get возвращает копию региона. Неизвестный id - ошибка, а не регион по умолчанию.
func (c *Catalog) Get(id string) (domain.Region, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Region{}, fmt.Errorf("region %q: %w", id, domain.ErrRegionNotFound)
	}
	return cloneRegion(c.regions[i]), nil
}

// MustGet - Get для идентификаторов, известных на этапе компиляции
func (c *Catalog) MustGet(id string) domain.Region {
	r, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return r
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IDs - канонический порядок для списка выбора региона
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.regions))
	for i, r := range c.regions {
		ids[i] = r.ID
	}
	return ids
}

// Regions возвращает копии всех регионов в каноническом порядке
func (c *Catalog) Regions() []domain.Region {
	out := make([]domain.Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = cloneRegion(r)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.regions)
}

func (c *Catalog) DefaultID() string {
	return c.defaultID
}

func (c *Catalog) Source() string {
	return c.source
}

// Fingerprint - хеш содержимого каталога, меняется при любом изменении регионов
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func cloneRegion(r domain.Region) domain.Region {
	r.RiskZones = slices.Clone(r.RiskZones)
	r.RiskScores.Historical = slices.Clone(r.RiskScores.Historical)
	r.RiskScores.Factors = maps.Clone(r.RiskScores.Factors)
	return r
}
