package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableQuery = "FROM information_schema.tables"

func TestHasTable(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()
	conn := sqlx.NewDb(raw, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta(tableQuery)).
		WithArgs("items").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("items"))
	mock.ExpectQuery(regexp.QuoteMeta(tableQuery)).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery(regexp.QuoteMeta(tableQuery)).
		WithArgs("team").
		WillReturnError(errors.New("connection refused"))

	ctx := context.Background()
	assert.True(t, HasTable(ctx, conn, "items"))
	assert.False(t, HasTable(ctx, conn, "orders"))
	assert.False(t, HasTable(ctx, conn, "team"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, NullIfEmpty(""))
	assert.Equal(t, "org-1", NullIfEmpty("org-1"))
}
