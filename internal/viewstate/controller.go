package viewstate

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/landslide-dashboard/internal/catalog"
	"github.com/landslide-dashboard/internal/chart"
	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/pkg/geo"
)

// Cascade - производные данные выбранного региона, пересчитываемые при его смене
type Cascade struct {
	RegionID   string                `json:"region_id"`
	Focus      domain.BoundingBox    `json:"focus_bounds"`
	Fit        geo.FitOptions        `json:"fit_options"`
	Factors    domain.CategorySeries `json:"factors"`
	Historical domain.TimeSeries     `json:"historical"`
}

// Snapshot - состояние сессии вместе с каскадом выбранного региона
type Snapshot struct {
	State   State   `json:"state"`
	Cascade Cascade `json:"cascade"`
}

// Controller владеет состоянием одной сессии и её счётчиком анализов.
// Все изменения сериализуются мьютексом сессии.
type Controller struct {
	mu       sync.Mutex
	state    State
	nextID   int
	catalog  *catalog.Catalog
	datasets *chart.Memo
	clock    func() time.Time

	lastAccess atomic.Int64
}

// NewController создает контроллер с начальным состоянием. Счётчик анализов
// продолжает нумерацию после начального списка.
func NewController(c *catalog.Catalog, datasets *chart.Memo, clock func() time.Time) *Controller {
	if clock == nil {
		clock = time.Now
	}
	if datasets == nil {
		datasets = chart.NewMemo()
	}

	state := Initial(c)
	ctrl := &Controller{
		state:    state,
		nextID:   len(state.Analyses) + 1,
		catalog:  c,
		datasets: datasets,
		clock:    clock,
	}
	ctrl.touch()
	return ctrl
}

// State возвращает копию текущего состояния
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	return c.state.Clone()
}

// Dispatch применяет действие. Смена региона не пересчитывает каскад здесь,
// для неё есть SelectRegion.
func (c *Controller) Dispatch(a Action) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	next, err := Reduce(c.state, a, c.catalog)
	if err != nil {
		return c.state.Clone(), err
	}
	c.state = next
	return c.state.Clone(), nil
}

// SelectRegion меняет выбранный регион и синхронно пересчитывает фокус и
// наборы данных. Неизвестный регион оставляет состояние без изменений.
// Если каскад не строится, выбор тоже не применяется.
func (c *Controller) SelectRegion(regionID string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	next, err := Reduce(c.state, SelectRegion{RegionID: regionID}, c.catalog)
	if err != nil {
		return Snapshot{}, err
	}

	cascade, err := c.cascade(next.SelectedRegion)
	if err != nil {
		return Snapshot{}, err
	}

	c.state = next
	return Snapshot{State: c.state.Clone(), Cascade: cascade}, nil
}

// GenerateNewAnalysis создает анализ для выбранного региона на текущую дату часов
func (c *Controller) GenerateNewAnalysis() (domain.Analysis, State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	analysis := domain.NewAnalysis(strconv.Itoa(c.nextID), c.clock(), c.state.SelectedRegion)

	next, err := Reduce(c.state, AppendAnalysis{Analysis: analysis}, c.catalog)
	if err != nil {
		return domain.Analysis{}, c.state.Clone(), err
	}

	c.nextID++
	c.state = next
	return analysis, c.state.Clone(), nil
}

// Snapshot возвращает состояние и каскад выбранного региона
func (c *Controller) Snapshot() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	cascade, err := c.cascade(c.state.SelectedRegion)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{State: c.state.Clone(), Cascade: cascade}, nil
}

// LastAccess - момент последнего обращения к сессии
func (c *Controller) LastAccess() time.Time {
	return time.Unix(0, c.lastAccess.Load())
}

func (c *Controller) touch() {
	c.lastAccess.Store(c.clock().UnixNano())
}

func (c *Controller) cascade(regionID string) (Cascade, error) {
	region, err := c.catalog.Get(regionID)
	if err != nil {
		return Cascade{}, err
	}

	focus, err := geo.FocusBounds(&region)
	if err != nil {
		return Cascade{}, err
	}
	factors, _, err := c.datasets.Factors(&region)
	if err != nil {
		return Cascade{}, err
	}
	historical, _, err := c.datasets.Historical(&region)
	if err != nil {
		return Cascade{}, err
	}

	return Cascade{
		RegionID:   region.ID,
		Focus:      focus,
		Fit:        geo.DefaultFitOptions(),
		Factors:    factors,
		Historical: historical,
	}, nil
}
