package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/landslide-dashboard/internal/domain"
	"github.com/landslide-dashboard/internal/domain/repository"
	"github.com/landslide-dashboard/internal/repository/postgres"
	"github.com/landslide-dashboard/internal/repository/postgres/testhelpers"
	"github.com/landslide-dashboard/internal/repository/static"
)

// RegionRepositoryTestSuite тестирует загрузку каталога из SQL
type RegionRepositoryTestSuite struct {
	suite.Suite
	setup  func(t *testing.T) *testhelpers.TestDB
	testDB *testhelpers.TestDB
	repo   repository.RegionRepository
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *RegionRepositoryTestSuite) SetupSuite() {
	s.testDB = s.setup(s.T())

	err := s.testDB.Cleanup(context.Background())
	s.Require().NoError(err, "Failed to cleanup test database")

	err = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewRegionRepositoryForTest(s.testDB)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *RegionRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

// SetupTest выполняется перед каждым тестом
func (s *RegionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RegionRepositoryTestSuite) TestSource() {
	s.Equal(postgres.SourceName, s.repo.Source())
}

// Сиды в миграции совпадают со встроенным каталогом
func (s *RegionRepositoryTestSuite) TestLoadRegions_MatchesBuiltinCatalog() {
	regions, err := s.repo.LoadRegions(s.ctx)
	s.Require().NoError(err)

	s.Equal(static.Regions(), regions)
}

func (s *RegionRepositoryTestSuite) TestLoadRegions_OrderAndShape() {
	regions, err := s.repo.LoadRegions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(regions, 3)

	s.Equal("coonoor", regions[0].ID)
	s.Equal("ooty", regions[1].ID)
	s.Equal("kodaikanal", regions[2].ID)

	ooty := regions[1]
	s.Equal(82, ooty.RiskScores.Current)
	s.Equal([]int{70, 75, 78, 80, 82}, ooty.RiskScores.Historical)
	s.Len(ooty.RiskZones, 3)
	s.Equal(domain.RiskHigh, ooty.RiskZones[0].Risk)
	s.Equal(domain.RiskLow, ooty.RiskZones[2].Risk)
	s.Len(ooty.RiskScores.Factors, 4)
}

func TestRegionRepository_SQLite(t *testing.T) {
	suite.Run(t, &RegionRepositoryTestSuite{setup: testhelpers.SetupSQLiteDB})
}

func TestRegionRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, &RegionRepositoryTestSuite{setup: testhelpers.SetupPostgresDB})
}
