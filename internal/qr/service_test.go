package qr

import (
	"testing"

	"pdks-backend/internal/apperr"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.KindNotFound, appErr.Kind)
}

// Mağaza sorgusunda organization_id koşulu olmadan satır dönmemeli; başka
// organizasyonun mağazası için kod üretimi transaction açılır açılmaz düşer.
func TestIssueRejectsStoreOutsideOrganization(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "stores" WHERE id = (.+) AND organization_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := Issue(db, 3, 99, 1)
	requireNotFound(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveForRejectsStoreOutsideOrganization(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "stores" WHERE id = (.+) AND organization_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ActiveFor(db, 3, 99)
	requireNotFound(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegenerateRejectsForeignOrganizationsCode(t *testing.T) {
	db, mock := newMockDB(t)

	// QR kaydı bulunur ama mağazası çağıranın organizasyonunda değildir
	mock.ExpectQuery(`SELECT (.+) FROM "qr_codes" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "code", "is_active"}).
			AddRow(5, 3, "a3f1c09b7d5e42618f0b2c4d6e8a1357", true))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "stores" WHERE id = (.+) AND organization_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := Regenerate(db, 5, 99, 1)
	requireNotFound(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
