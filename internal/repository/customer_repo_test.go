package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"custsvc/internal/config"
	"custsvc/internal/domain"
	"custsvc/internal/pkg/db"
)

func newSQLiteRepo(t *testing.T) (*CustomerRepo, *gorm.DB) {
	t.Helper()
	gdb, err := db.Open(config.Config{Driver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	require.NoError(t, db.EnsureSchema(context.Background(), gdb))
	return NewCustomerRepo(gdb), gdb
}

func jane(addrs ...domain.Address) domain.Customer {
	return domain.Customer{FirstName: "Jane", LastName: "Doe", Phone: "1234567890", Email: "jane@x.com", Addresses: addrs}
}

func addr(street, city, state, zip string, primary bool) domain.Address {
	return domain.Address{Street: street, City: city, State: state, Zip: zip, IsPrimary: primary}
}

func rowsFor(rows []domain.CustomerRow, id int64) []domain.CustomerRow {
	var out []domain.CustomerRow
	for _, r := range rows {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}

func countAddresses(t *testing.T, gdb *gorm.DB, customerID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Table("addresses").Where(`"customerId" = ?`, customerID).Count(&n).Error)
	return n
}

func TestCustomerRepo_CreateAndList(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	withTwo, err := repo.CreateCustomer(ctx, jane(
		addr("1 Main", "Metro", "NY", "10001", true),
		addr("2 Side", "Springfield", "IL", "62701", false),
	))
	require.NoError(t, err)
	assert.Positive(t, withTwo)

	bare := domain.Customer{FirstName: "John", LastName: "Smith", Phone: "0987654321", Email: "john@y.org"}
	withNone, err := repo.CreateCustomer(ctx, bare)
	require.NoError(t, err)
	assert.NotEqual(t, withTwo, withNone)

	rows, err := repo.ListCustomers(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	two := rowsFor(rows, withTwo)
	require.Len(t, two, 2)
	require.NotNil(t, two[0].City)
	assert.Equal(t, "Metro", *two[0].City)
	assert.Equal(t, "Springfield", *two[1].City)
	assert.Equal(t, "Jane", two[0].FirstName)

	none := rowsFor(rows, withNone)
	require.Len(t, none, 1)
	assert.Equal(t, "Smith", none[0].LastName)
	assert.Nil(t, none[0].Street)
	assert.Nil(t, none[0].City)
	assert.Nil(t, none[0].State)
	assert.Nil(t, none[0].Zip)
}

func TestCustomerRepo_ListFilters(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	janeID, err := repo.CreateCustomer(ctx, jane(
		addr("1 Main", "Metro", "NY", "10001", true),
		addr("9 Elm", "Springfield", "IL", "62701", false),
	))
	require.NoError(t, err)
	johnID, err := repo.CreateCustomer(ctx, domain.Customer{
		FirstName: "John", LastName: "Smithers", Phone: "0987654321", Email: "john@y.org",
		Addresses: []domain.Address{addr("5 Oak", "West Springfield", "MA", "01089", true)},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter domain.Filter
		want   map[int64]int
	}{
		{name: "city_substring", filter: domain.Filter{City: "Springfield"}, want: map[int64]int{janeID: 1, johnID: 1}},
		{name: "city_exact", filter: domain.Filter{City: "Metro"}, want: map[int64]int{janeID: 1}},
		{name: "name_matches_first_name", filter: domain.Filter{Name: "Joh"}, want: map[int64]int{johnID: 1}},
		{name: "name_matches_last_name", filter: domain.Filter{Name: "oe"}, want: map[int64]int{janeID: 2}},
		{name: "state", filter: domain.Filter{State: "IL"}, want: map[int64]int{janeID: 1}},
		{name: "zip", filter: domain.Filter{Zip: "010"}, want: map[int64]int{johnID: 1}},
		{name: "combined", filter: domain.Filter{Name: "Smith", City: "Springfield"}, want: map[int64]int{johnID: 1}},
		{name: "no_match", filter: domain.Filter{City: "Gotham"}, want: map[int64]int{}},
		{name: "quote_is_data", filter: domain.Filter{Name: "' OR 1=1 --"}, want: map[int64]int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.ListCustomers(ctx, tc.filter)
			require.NoError(t, err)

			got := map[int64]int{}
			for _, r := range rows {
				got[r.ID]++
				if tc.filter.City != "" {
					require.NotNil(t, r.City)
					assert.Contains(t, *r.City, tc.filter.City)
				}
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCustomerRepo_ListEmpty(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	rows, err := repo.ListCustomers(context.Background(), domain.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCustomerRepo_GetCustomer(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	id, err := repo.CreateCustomer(ctx, jane(
		addr("1 Main", "Metro", "NY", "10001", true),
		addr("2 Side", "Metro", "NY", "10002", true),
	))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		c, err := repo.GetCustomer(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, "jane@x.com", c.Email)
		require.Len(t, c.Addresses, 2)
		// more than one primary address is accepted as-is
		assert.True(t, c.Addresses[0].IsPrimary)
		assert.True(t, c.Addresses[1].IsPrimary)
		assert.Equal(t, id, c.Addresses[1].CustomerID)
		assert.Equal(t, "10002", c.Addresses[1].Zip)
	})

	t.Run("not_found", func(t *testing.T) {
		c, err := repo.GetCustomer(ctx, id+100)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, c)
	})
}

func TestCustomerRepo_UpdateReplacesAddresses(t *testing.T) {
	repo, gdb := newSQLiteRepo(t)
	ctx := context.Background()

	id, err := repo.CreateCustomer(ctx, jane(
		addr("A street", "Alpha", "NY", "10001", true),
		addr("B street", "Beta", "NY", "10002", false),
	))
	require.NoError(t, err)

	upd := domain.Customer{
		FirstName: "Janet", LastName: "Doe", Phone: "1112223333", Email: "janet@x.com",
		Addresses: []domain.Address{addr("C street", "Gamma", "CA", "90001", true)},
	}
	require.NoError(t, repo.UpdateCustomer(ctx, id, upd))

	rows, err := repo.ListCustomers(ctx, domain.Filter{})
	require.NoError(t, err)
	mine := rowsFor(rows, id)
	require.Len(t, mine, 1)
	assert.Equal(t, "Janet", mine[0].FirstName)
	assert.Equal(t, "1112223333", mine[0].Phone)
	require.NotNil(t, mine[0].Street)
	assert.Equal(t, "C street", *mine[0].Street)
	assert.Equal(t, int64(1), countAddresses(t, gdb, id))

	t.Run("to_empty_address_set", func(t *testing.T) {
		upd.Addresses = nil
		require.NoError(t, repo.UpdateCustomer(ctx, id, upd))
		assert.Equal(t, int64(0), countAddresses(t, gdb, id))
	})
}

func TestCustomerRepo_UpdateMissingIsNoop(t *testing.T) {
	repo, gdb := newSQLiteRepo(t)
	ctx := context.Background()

	err := repo.UpdateCustomer(ctx, 4242, jane(addr("1 Main", "Metro", "NY", "10001", true)))
	require.NoError(t, err)

	rows, err := repo.ListCustomers(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int64(0), countAddresses(t, gdb, 4242))
}

func TestCustomerRepo_Delete(t *testing.T) {
	repo, gdb := newSQLiteRepo(t)
	ctx := context.Background()

	id, err := repo.CreateCustomer(ctx, jane(addr("1 Main", "Metro", "NY", "10001", true)))
	require.NoError(t, err)
	keep, err := repo.CreateCustomer(ctx, jane())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCustomer(ctx, id))

	rows, err := repo.ListCustomers(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rowsFor(rows, id))
	assert.Len(t, rowsFor(rows, keep), 1)
	assert.Equal(t, int64(0), countAddresses(t, gdb, id))

	t.Run("missing_id_is_noop", func(t *testing.T) {
		require.NoError(t, repo.DeleteCustomer(ctx, id))
		require.NoError(t, repo.DeleteCustomer(ctx, 999999))
	})
}

func newMockRepo(t *testing.T) (*CustomerRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewCustomerRepo(gdb), mock
}

func TestCustomerRepo_CreateRollsBackOnAddressError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "addresses"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	id, err := repo.CreateCustomer(context.Background(), jane(addr("1 Main", "Metro", "NY", "10001", true)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, int64(0), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepo_UpdateRollsBackOnAddressError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "addresses"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO "addresses"`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.UpdateCustomer(context.Background(), 7, jane(addr("C", "Gamma", "CA", "90001", true)))
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepo_DeleteCommits(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "addresses"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "customers"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCustomer(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
