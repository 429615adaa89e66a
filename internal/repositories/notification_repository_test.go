package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"collegefest_backend/internal/database"
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		FirstName:    "Test",
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestMarkReadIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	user := createUser(t, db, "reader")

	notification := models.Notification{UserID: user.ID, Title: "t", Message: "m"}
	require.NoError(t, repo.Create(&notification))

	require.NoError(t, repo.MarkRead(notification.ID))

	// Second mark is a no-op, not an error
	require.NoError(t, repo.MarkRead(notification.ID))

	stored, err := repo.FindByID(notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
}

func TestMarkReadMissingRow(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewNotificationRepository(db)

	err := repo.MarkRead(12345)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	user := createUser(t, db, "lister")
	other := createUser(t, db, "other")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		n := models.Notification{
			UserID:    user.ID,
			Title:     fmt.Sprintf("title %d", i),
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(&n))
	}
	require.NoError(t, repo.Create(&models.Notification{UserID: other.ID, Title: "not mine", Message: "m"}))

	notifications, err := repo.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "title 2", notifications[0].Title)
	assert.Equal(t, "title 1", notifications[1].Title)
	assert.Equal(t, "title 0", notifications[2].Title)
}

func TestListForUserEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	user := createUser(t, db, "fresh")

	notifications, err := repo.ListForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestUnreadCount(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	user := createUser(t, db, "counter")

	first := models.Notification{UserID: user.ID, Title: "a", Message: "m"}
	second := models.Notification{UserID: user.ID, Title: "b", Message: "m"}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	count, err := repo.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.MarkRead(first.ID))

	count, err = repo.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
