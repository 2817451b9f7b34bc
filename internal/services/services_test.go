package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/playtube/playtube-backend/internal/config"
	"github.com/playtube/playtube-backend/internal/models"
)

// newTestDB opens a per-test in-memory database with the full schema. The
// database name is derived from the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Video{},
		&models.Comment{},
		&models.Like{},
		&models.Tweet{},
		&models.Subscription{},
		&models.Playlist{},
		&models.PlaylistVideo{},
		&models.VideoView{},
		&models.SystemLog{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FullName:  "Test " + username,
		Password:  "irrelevant",
		AvatarURL: "https://cdn.example.com/avatars/" + username + ".png",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createVideo(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string) *models.Video {
	t.Helper()
	video := &models.Video{
		Title:        title,
		Description:  "about " + title,
		VideoURL:     "https://cdn.example.com/videos/" + uuid.NewString() + ".mp4",
		ThumbnailURL: "https://cdn.example.com/thumbs/" + uuid.NewString() + ".jpg",
		IsPublished:  true,
		OwnerID:      ownerID,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}
