package userrepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("users"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = userrepo.NewGormUserRepository(suite.database.DB, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenGetByEmail() {
	ctx := context.Background()
	u, err := user.NewUser("Ana", "a@test.com", "hash")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.GetByEmail(ctx, "  A@TEST.COM ")
	suite.Require().NoError(err)
	suite.True(u.ID().IsEqual(got.ID()))
	suite.Equal("Ana", got.Name())
	suite.Equal("hash", got.PasswordHash())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", u.ID(), u)
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_SameNormalizedEmail_ReturnsAlreadyExists() {
	ctx := context.Background()
	first, _ := user.NewUser("Ana", "a@test.com", "hash")
	second, _ := user.NewUser("Other Ana", " A@Test.com ", "hash")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&userrepo.UserDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_Unknown_ReturnsNotFound() {
	got, err := suite.repository.GetByEmail(context.Background(), "ghost@test.com")

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestExistsByEmail() {
	ctx := context.Background()
	u, _ := user.NewUser("Ana", "a@test.com", "hash")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	exists, err := suite.repository.ExistsByEmail(ctx, "A@test.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByEmail(ctx, "b@test.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
