package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})
	return db, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

var (
	juneStart = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	julyStart = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	juneEnd   = time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC)
)

func TestCountRecordsFiltersOnSourceDateColumn(t *testing.T) {
	tests := []struct {
		source enum.RecordSource
		query  string
		args   []driver.Value
	}{
		{
			source: enum.SourceProducts,
			query:  `SELECT count(*) FROM "products" WHERE created_at >= $1 AND created_at < $2`,
			args:   []driver.Value{juneStart, julyStart},
		},
		{
			source: enum.SourceSuppliers,
			query:  `SELECT count(*) FROM "suppliers" WHERE created_at >= $1 AND created_at < $2`,
			args:   []driver.Value{juneStart, julyStart},
		},
		{
			source: enum.SourceOrders,
			query:  `SELECT count(*) FROM "orders" WHERE created_at >= $1 AND created_at < $2`,
			args:   []driver.Value{juneStart, julyStart},
		},
		{
			source: enum.SourceExpenses,
			query:  `SELECT count(*) FROM "expenses" WHERE expense_date >= $1 AND expense_date < $2`,
			args:   []driver.Value{juneStart, julyStart},
		},
		{
			source: enum.SourceTransactions,
			query:  `SELECT count(*) FROM "transactions" WHERE transaction_date >= $1 AND transaction_date < $2`,
			args:   []driver.Value{juneStart, julyStart},
		},
		{
			source: enum.SourceUsers,
			query:  `SELECT count(*) FROM "users" WHERE created_at >= $1 AND created_at < $2 AND role = $3`,
			args:   []driver.Value{juneStart, julyStart, "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewAnalyticsRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnRows(countRows(4))

			count, err := repo.CountRecords(context.Background(), tt.source, domainRepo.Between(juneStart, julyStart))
			require.NoError(t, err)
			assert.Equal(t, int64(4), count)
		})
	}
}

func TestCountRecordsAllTimeHasNoWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`^SELECT count\(\*\) FROM "orders"$`).WithoutArgs().WillReturnRows(countRows(60))

	count, err := repo.CountRecords(context.Background(), enum.SourceOrders, domainRepo.AllTime())
	require.NoError(t, err)
	assert.Equal(t, int64(60), count)
}

func TestCountRecordsUsersAllTimeKeepsRoleFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE role = $1`)).
		WithArgs("user").
		WillReturnRows(countRows(6))

	count, err := repo.CountRecords(context.Background(), enum.SourceUsers, domainRepo.AllTime())
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
}

func TestCountRecordsUnknownSource(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	_, err := repo.CountRecords(context.Background(), enum.RecordSource(99), domainRepo.AllTime())
	assert.EqualError(t, err, "unknown record source 99")
}

func TestCountRecordsWrapsQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	boom := assert.AnError
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "expenses"`)).WillReturnError(boom)

	_, err := repo.CountRecords(context.Background(), enum.SourceExpenses, domainRepo.AllTime())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "count expenses")
}

func TestSumOrderRevenueInclusiveWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	w := domainRepo.Window{Start: &juneStart, End: &juneEnd, IncludeEnd: true}
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(SUM(total_amount), 0) FROM "orders" WHERE created_at >= $1 AND created_at <= $2`,
	)).
		WithArgs(juneStart, juneEnd).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

	revenue, err := repo.SumOrderRevenue(context.Background(), w)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero(), "got %s", revenue)
}

func TestSumOrderRevenue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(SUM(total_amount), 0) FROM "orders" WHERE created_at >= $1 AND created_at < $2`,
	)).
		WithArgs(juneStart, julyStart).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1250.50"))

	revenue, err := repo.SumOrderRevenue(context.Background(), domainRepo.Between(juneStart, julyStart))
	require.NoError(t, err)
	assert.Equal(t, "1250.5", revenue.String())
}

func TestSalesBucketsGroupsInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	w := domainRepo.Window{Start: &juneStart, End: &juneEnd, IncludeEnd: true}
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT to_char(created_at AT TIME ZONE 'UTC', $1) AS bucket, ` +
			`COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue ` +
			`FROM "orders" WHERE created_at >= $2 AND created_at <= $3 ` +
			`GROUP BY "bucket" ORDER BY bucket ASC`,
	)).
		WithArgs("YYYY-MM-DD", juneStart, juneEnd).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "total_orders", "total_revenue"}).
			AddRow("2024-06-02", int64(2), "40").
			AddRow("2024-06-30", int64(1), "50"))

	rows, err := repo.SalesBuckets(context.Background(), w, enum.GroupByDay)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06-02", rows[0].Bucket)
	assert.Equal(t, int64(2), rows[0].TotalOrders)
	assert.True(t, rows[0].TotalRevenue.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "2024-06-30", rows[1].Bucket)
}

func TestSalesBucketsUsesGroupByFormat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`to_char(created_at AT TIME ZONE 'UTC', $1) AS bucket`)).
		WithArgs("YYYY").
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "total_orders", "total_revenue"}))

	rows, err := repo.SalesBuckets(context.Background(), domainRepo.AllTime(), enum.GroupByYear)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSalesTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	query := regexp.QuoteMeta(
		`SELECT COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue, ` +
			`MAX(total_amount) AS max_order_value, MIN(total_amount) AS min_order_value ` +
			`FROM "orders" WHERE created_at >= $1 AND created_at < $2`,
	)
	columns := []string{"total_orders", "total_revenue", "max_order_value", "min_order_value"}

	t.Run("with orders", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(juneStart, julyStart).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(3), "90", "50", "10"))

		totals, err := repo.SalesTotals(context.Background(), domainRepo.Between(juneStart, julyStart))
		require.NoError(t, err)
		assert.Equal(t, int64(3), totals.TotalOrders)
		assert.True(t, totals.TotalRevenue.Equal(decimal.NewFromInt(90)))
		require.True(t, totals.MaxOrderValue.Valid)
		assert.True(t, totals.MaxOrderValue.Decimal.Equal(decimal.NewFromInt(50)))
		require.True(t, totals.MinOrderValue.Valid)
		assert.True(t, totals.MinOrderValue.Decimal.Equal(decimal.NewFromInt(10)))
	})

	t.Run("empty window", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(juneStart, julyStart).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(0), "0", nil, nil))

		totals, err := repo.SalesTotals(context.Background(), domainRepo.Between(juneStart, julyStart))
		require.NoError(t, err)
		assert.Zero(t, totals.TotalOrders)
		assert.True(t, totals.TotalRevenue.IsZero())
		assert.False(t, totals.MaxOrderValue.Valid)
		assert.False(t, totals.MinOrderValue.Valid)
	})
}
