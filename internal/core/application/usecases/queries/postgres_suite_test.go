package queries_test

import (
	"context"
	"time"

	"seomarket/internal/adapters/out/postgres/migrations"
	"seomarket/internal/adapters/out/postgres/orderrepo"
	"seomarket/internal/adapters/out/postgres/statuslogrepo"
	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/core/domain/model/statuslog"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresSuite is embedded by the query handler suites. It owns the container
// and offers helpers that seed data through the real repositories.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	logRepo   *statuslogrepo.GormStatusLogRepository
}

func (suite *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
	suite.logRepo = statuslogrepo.NewGormStatusLogRepository(db)
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *postgresSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_status_logs").Error
	suite.Require().NoError(err)
}

// seedOrder stores an order created at createdAt and walks it to status without
// going through the authority.
func (suite *postgresSuite) seedOrder(status order.Status, createdAt time.Time) *order.Order {
	ctx := context.Background()
	price, err := kernel.MoneyFromString("300")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	if status == order.SeoerOrder {
		return o
	}

	_, err = o.ChangeStatus(status, "", createdAt.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	stored, err := suite.orderRepo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	return stored
}

func (suite *postgresSuite) seedLog(orderID kernel.UUID, from, to order.Status, r role.Role, at time.Time) *statuslog.Entry {
	e, err := statuslog.NewEntry(order.StatusChanged{
		OrderID: orderID,
		From:    from,
		To:      to,
		At:      at,
	}, kernel.NewUUID(), r)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Add(context.Background(), e))
	return e
}

func (suite *postgresSuite) requester(r role.Role) role.Requester {
	requester, err := role.NewRequester(kernel.NewUUID(), r)
	suite.Require().NoError(err)
	return requester
}
