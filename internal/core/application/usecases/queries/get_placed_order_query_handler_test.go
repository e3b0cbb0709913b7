package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"ordertaking/internal/adapters/out/postgres/pgtest"
	"ordertaking/internal/adapters/out/postgres/placedorderrepo"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/model/order/ordertest"
	"ordertaking/internal/pkg/errs"
)

type GetPlacedOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPlacedOrderQueryHandler
	orderRepo *placedorderrepo.GormPlacedOrderRepository
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.handler = queries.NewGetPlacedOrderQueryHandler(db)
	suite.orderRepo = placedorderrepo.NewGormPlacedOrderRepository(db)
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error
	suite.Require().NoError(err)
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_ReturnsStoredOrder() {
	unvalidated := ordertest.UnvalidatedOrder()
	unvalidated.BillingAddress.AddressLine2 = "PO Box 7"
	unvalidated.Lines = append(unvalidated.Lines,
		order.UnvalidatedOrderLine{OrderLineID: "L2", ProductCode: "G123", Quantity: 1.25},
	)
	priced := ordertest.PricedOrder(suite.T(), unvalidated, map[string]string{"W1234": "2.50", "G123": "4.00"})
	placedAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), priced, placedAt))

	query, err := queries.NewGetPlacedOrderQuery("order-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("order-1", result.OrderID)
	suite.Equal("Lovelace", result.LastName)
	suite.Equal("1 Main Street", result.ShippingAddress.AddressLine1)
	suite.Empty(result.ShippingAddress.AddressLine2)
	suite.Equal("PO Box 7", result.BillingAddress.AddressLine2)
	suite.True(decimal.RequireFromString("30").Equal(result.AmountToBill))
	suite.True(placedAt.Equal(result.PlacedAt))

	suite.Require().Len(result.Lines, 2)
	suite.Equal("L1", result.Lines[0].OrderLineID)
	suite.Equal("L2", result.Lines[1].OrderLineID)
	suite.True(decimal.RequireFromString("1.25").Equal(result.Lines[1].Quantity))
	suite.True(decimal.RequireFromString("5").Equal(result.Lines[1].LinePrice))
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_SubCentAmountsMatchPricedOrder() {
	unvalidated := ordertest.UnvalidatedOrder()
	unvalidated.Lines = []order.UnvalidatedOrderLine{
		{OrderLineID: "L1", ProductCode: "G123", Quantity: 0.333},
		{OrderLineID: "L2", ProductCode: "G123", Quantity: 0.333},
	}
	priced := ordertest.PricedOrder(suite.T(), unvalidated, map[string]string{"G123": "2.50"})
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), priced, time.Now()))

	query, _ := queries.NewGetPlacedOrderQuery("order-1")
	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(priced.AmountToBill().Value().Equal(result.AmountToBill), "got %s", result.AmountToBill)
	suite.True(decimal.RequireFromString("1.665").Equal(result.AmountToBill))

	suite.Require().Len(result.Lines, 2)
	sum := decimal.Zero
	for i, line := range result.Lines {
		suite.True(priced.Lines()[i].LinePrice().Value().Equal(line.LinePrice), "got %s", line.LinePrice)
		suite.True(decimal.RequireFromString("0.333").Equal(line.Quantity), "got %s", line.Quantity)
		sum = sum.Add(line.LinePrice)
	}
	suite.True(sum.Equal(result.AmountToBill))
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_OrderWithoutLines() {
	unvalidated := ordertest.UnvalidatedOrder()
	unvalidated.Lines = nil
	priced := ordertest.PricedOrder(suite.T(), unvalidated, nil)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), priced, time.Now()))

	query, _ := queries.NewGetPlacedOrderQuery("order-1")
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Lines)
	suite.Empty(result.Lines)
	suite.True(result.AmountToBill.IsZero())
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, _ := queries.NewGetPlacedOrderQuery("missing")

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPlacedOrderQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPlacedOrderQuery constructor")
}

func (suite *GetPlacedOrderQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	query, _ := queries.NewGetPlacedOrderQuery("order-1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

func TestGetPlacedOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPlacedOrderQueryHandlerTestSuite))
}
