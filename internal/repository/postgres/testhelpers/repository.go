package testhelpers

import (
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/repository/postgres"
)

// NewRegionRepositoryForTest creates a region repository over the test database
func NewRegionRepositoryForTest(tdb *TestDB) repository.RegionRepository {
	pgDB := postgres.NewDBForTest(tdb.DB, tdb.Schema, tdb.Logger)
	return postgres.NewRegionRepository(pgDB, tdb.Logger)
}
