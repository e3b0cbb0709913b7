package outboxrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"ordertaking/internal/adapters/contracts"
	"ordertaking/internal/adapters/out/postgres/outboxrepo"
	"ordertaking/internal/adapters/out/postgres/pgtest"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/model/order/ordertest"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/option"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error
	suite.Require().NoError(err)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// events returns OrderPlaced followed by BillableOrderPlaced.
func (suite *OutboxRepositoryIntegrationTestSuite) events() []order.Event {
	priced := ordertest.PricedOrder(suite.T(), ordertest.UnvalidatedOrder(), map[string]string{"W1234": "2.50"})
	return order.CreateEvents(priced, option.None[order.OrderAcknowledgmentSent]())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_GetUnpublished_KeepsEventOrder() {
	ctx := context.Background()
	occurredAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Add(ctx, occurredAt, suite.events()))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Equal(contracts.EventOrderPlaced, messages[0].EventType)
	suite.Equal(contracts.EventBillableOrderPlaced, messages[1].EventType)
	suite.True(messages[0].OccurredAt.Before(messages[1].OccurredAt))

	var envelope contracts.Event
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &envelope))
	suite.Equal(messages[0].ID.String(), envelope.EventID)
	suite.Equal("order-1", envelope.OrderID)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_RespectsLimit() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, time.Now(), suite.events()))

	messages, err := suite.repository.GetUnpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Len(messages, 1)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_HidesMessage() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, time.Now(), suite.events()))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.MarkPublished(ctx, messages[0].ID, time.Now()))

	remaining, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(messages[1].ID, remaining[0].ID)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_Twice() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, time.Now(), suite.events()))

	messages, err := suite.repository.GetUnpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.MarkPublished(ctx, messages[0].ID, time.Now()))

	err = suite.repository.MarkPublished(ctx, messages[0].ID, time.Now())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_UnknownID() {
	err := suite.repository.MarkPublished(context.Background(), uuid.New(), time.Now())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_NoEvents() {
	suite.Require().NoError(suite.repository.Add(context.Background(), time.Now(), nil))

	messages, err := suite.repository.GetUnpublished(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
