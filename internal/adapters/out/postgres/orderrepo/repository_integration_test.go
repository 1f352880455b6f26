package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(orderNumber string) *order.Order {
	return suite.newOrderWithValue(orderNumber, "10.50")
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderWithValue(orderNumber, value string) *order.Order {
	addr, err := kernel.NewAddress("01001-000", "Praça da Sé", "10", "Sé", "São Paulo", "SP")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), orderNumber, "Notebook", decimal.RequireFromString(value), addr)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGetByOrderNumber_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder("PED-1")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByOrderNumber(ctx, "PED-1")
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))
	suite.Equal("Notebook", got.Description())
	suite.True(decimal.RequireFromString("10.50").Equal(got.Value()))
	equal, err := o.Address().IsEqual(got.Address())
	suite.Require().NoError(err)
	suite.True(equal)
	suite.Equal(order.Created, got.Status())
	suite.WithinDuration(o.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_BoundaryValues_RoundTripExactly() {
	ctx := context.Background()
	for i, value := range []string{order.MinValue.String(), "10.55", "123456.78", order.MaxValue.String()} {
		orderNumber := fmt.Sprintf("PED-%d", i)
		o := suite.newOrderWithValue(orderNumber, value)
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o), value)

		got, err := suite.repository.GetByOrderNumber(ctx, orderNumber)
		suite.Require().NoError(err, value)
		suite.True(o.Value().Equal(got.Value()), "stored %s, restored %s", value, got.Value())
	}
	suite.tracker.AssertExpectations(suite.T())
}

// The value column rounds below a cent and overflows above MaxValue, so both are
// rejected before an order reaches the store.
func (suite *OrderRepositoryIntegrationTestSuite) TestValueColumn_LosesWhatValidateValueRejects() {
	ctx := context.Background()
	o := suite.newOrder("PED-1")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	subCent := decimal.RequireFromString("10.555")
	suite.Require().ErrorIs(order.ValidateValue(subCent), errs.ErrValueIsInvalid)
	suite.Require().NoError(suite.database.DB.Exec(
		"UPDATE orders SET value = ? WHERE order_number = ?", subCent, "PED-1").Error)
	got, err := suite.repository.GetByOrderNumber(ctx, "PED-1")
	suite.Require().NoError(err)
	suite.Equal("10.56", got.Value().StringFixed(2))

	overflow := order.MaxValue.Add(order.MinValue)
	suite.Require().ErrorIs(order.ValidateValue(overflow), errs.ErrValueIsOutOfRange)
	suite.Require().Error(suite.database.DB.Exec(
		"UPDATE orders SET value = ? WHERE order_number = ?", overflow, "PED-1").Error)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.newOrder("PED-1")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, suite.newOrder("PED-1"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Equal(errs.Conflict, errs.KindOf(err))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber_Missing_ReturnsNotFound() {
	got, err := suite.repository.GetByOrderNumber(context.Background(), "PED-404")

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsDeliveredStatus() {
	ctx := context.Background()
	o := suite.newOrder("PED-1")
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.MarkDelivered())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.GetByOrderNumber(ctx, "PED-1")
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Equal("Delivered", got.Status().String())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("PED-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsByOrderNumber() {
	ctx := context.Background()
	o := suite.newOrder("PED-1")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	exists, err := suite.repository.ExistsByOrderNumber(ctx, "PED-1")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByOrderNumber(ctx, "PED-2")
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
