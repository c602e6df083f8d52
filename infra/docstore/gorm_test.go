package docstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orioninvest/brokerage/pkg/docstore"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

func TestGormStore_Get(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"collection", "doc_id", "fields", "created_at", "updated_at"}).
		AddRow(docstore.Users, "u1", []byte(`{"username":"amira","currentBalance":905000}`), time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1 AND doc_id = \$2`).
		WithArgs(docstore.Users, "u1", 1).WillReturnRows(rows)

	doc, err := store.Get(context.Background(), docstore.Users, "u1")
	require.NoError(err)
	require.NotNil(doc)
	assert.Equal("amira", doc["username"])

	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1 AND doc_id = \$2`).
		WithArgs(docstore.Users, "missing", 1).WillReturnError(gorm.ErrRecordNotFound)

	doc, err = store.Get(context.Background(), docstore.Users, "missing")
	require.NoError(err, "a missing document is not an error")
	assert.Nil(doc)
}

func TestGormStore_GetQueryError(t *testing.T) {
	require := require.New(t)
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "documents"`).
		WillReturnError(errors.New("connection refused"))

	_, err := store.Get(context.Background(), docstore.Accounts, "u1")
	require.Error(err)
}

func TestGormStore_Set(t *testing.T) {
	require := require.New(t)
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "documents" (.+) ON CONFLICT (.+) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Set(context.Background(), docstore.Users, "u1", docstore.Document{
		"username": "amira",
	})
	require.NoError(err)
	require.NoError(mock.ExpectationsWereMet())
}

func TestGormStore_Update(t *testing.T) {
	require := require.New(t)
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	rows := sqlmock.NewRows([]string{"collection", "doc_id", "fields", "created_at", "updated_at"}).
		AddRow(docstore.Users, "u1", []byte(`{"currentBalance":905000}`), time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1 AND doc_id = \$2`).
		WithArgs(docstore.Users, "u1", 1).WillReturnRows(rows)
	mock.ExpectExec(`UPDATE "documents" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Update(context.Background(), docstore.Users, "u1", docstore.Document{
		"first_name": "Amira",
	})
	require.NoError(err)
	require.NoError(mock.ExpectationsWereMet())
}

func TestGormStore_UpdateMissing(t *testing.T) {
	require := require.New(t)
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1 AND doc_id = \$2`).
		WithArgs(docstore.Users, "missing", 1).WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	err := store.Update(context.Background(), docstore.Users, "missing", docstore.Document{"a": 1})
	require.ErrorIs(err, docstore.ErrNotFound)
}
