package statuslogrepo_test

import (
	"context"
	"testing"
	"time"

	"seomarket/internal/adapters/out/postgres/migrations"
	"seomarket/internal/adapters/out/postgres/statuslogrepo"
	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/core/domain/model/statuslog"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StatusLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *statuslogrepo.GormStatusLogRepository
}

func (suite *StatusLogRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(connStr))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *StatusLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_status_logs").Error)
	suite.repository = statuslogrepo.NewGormStatusLogRepository(suite.db)
}

func (suite *StatusLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusLogRepositoryIntegrationTestSuite) TestAdd_StoresEntry() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := suite.newEntry(orderID, order.ConfirmedByPartner, order.CompletedByPartner, role.Partner, at)

	suite.Require().NoError(suite.repository.Add(ctx, e))

	var stored statuslogrepo.EntryDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", e.ID().Bytes()).Error)
	suite.Equal(orderID.Bytes(), stored.OrderID)
	suite.Equal("CONFIRMED_BY_PARTNER", stored.FromStatus)
	suite.Equal("COMPLETED_BY_PARTNER", stored.ToStatus)
	suite.Equal(e.ChangedBy().Bytes(), stored.ChangedBy)
	suite.Equal("PARTNER", stored.ChangedByRole)
	suite.Equal("https://files.example.com/report.pdf", stored.FileURL)
	suite.True(stored.ChangedAt.Equal(at))
}

func (suite *StatusLogRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	e := suite.newEntry(kernel.NewUUID(), order.SeoerOrder, order.CancelledBySeoer, role.Seoer, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, e))

	suite.Require().Error(suite.repository.Add(ctx, e))
}

func (suite *StatusLogRepositoryIntegrationTestSuite) TestAdd_UnconstructedEntry_Fails() {
	err := suite.repository.Add(context.Background(), &statuslog.Entry{})

	suite.Require().ErrorIs(err, statuslog.ErrEntryIsNotConstructed)
}

func (suite *StatusLogRepositoryIntegrationTestSuite) newEntry(
	orderID kernel.UUID,
	from, to order.Status,
	r role.Role,
	at time.Time,
) *statuslog.Entry {
	e, err := statuslog.NewEntry(order.StatusChanged{
		OrderID: orderID,
		From:    from,
		To:      to,
		FileURL: "https://files.example.com/report.pdf",
		At:      at,
	}, kernel.NewUUID(), r)
	suite.Require().NoError(err)
	return e
}

func TestStatusLogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(StatusLogRepositoryIntegrationTestSuite))
}
