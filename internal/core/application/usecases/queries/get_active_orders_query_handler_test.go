package queries_test

import (
	"context"
	"testing"
	"time"

	"seomarket/internal/core/application/usecases/queries"
	"seomarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()
	suite.handler = queries.NewGetActiveOrdersQueryHandler(suite.db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetActiveOrdersQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SkipsTerminalAndDeletedOrders() {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	first := suite.seedOrder(order.SeoerOrder, base)
	second := suite.seedOrder(order.ConfirmedByPartner, base.Add(time.Hour))
	suite.seedOrder(order.PaidByManager, base.Add(2*time.Hour))
	suite.seedOrder(order.CancelledBySeoer, base.Add(3*time.Hour))
	suite.seedOrder(order.CancelledByManager, base.Add(4*time.Hour))
	deleted := suite.seedOrder(order.ConfirmedByTeamLeader, base.Add(5*time.Hour))
	suite.Require().NoError(suite.orderRepo.Delete(ctx, deleted.ID()))

	query, err := queries.NewGetActiveOrdersQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.Equal(order.SeoerOrder, result[0].Status)
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.Equal(order.ConfirmedByPartner, result[1].Status)
	suite.Equal("300.00", result[1].Price.String())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_RespectsLimit() {
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		suite.seedOrder(order.SeoerOrder, base.Add(time.Duration(i)*time.Minute))
	}

	query, err := queries.NewGetActiveOrdersQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
