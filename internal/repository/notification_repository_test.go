package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestNotificationRepository_Create(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewNotificationRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(&models.Notification{
		UserID:  2,
		Message: "Shift tomorrow at 9am",
		Status:  models.NotificationStatusSent,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListByUser_OrdersBySentAtDesc(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewNotificationRepository(gormDB)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = .+ ORDER BY sent_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id", "user_id", "message", "status", "sent_at"}).
			AddRow(2, 7, "second", "Sent", now).
			AddRow(1, 7, "first", "Read", now.Add(-time.Hour)))

	notifications, err := repo.ListByUser(7)

	assert.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, uint(2), notifications[0].ID)
	assert.Equal(t, models.NotificationStatusRead, notifications[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkManyRead_SingleStatement(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewNotificationRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "status"=.+ WHERE notification_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	count, err := repo.MarkManyRead([]uint{1, 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
