package testutil

import (
	"fmt"
	"testing"

	"scribe/internal/db"
	"scribe/internal/models"
	"scribe/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestPassword is the password every user created by CreateUser gets.
const TestPassword = "secret123"

// OpenTestDB opens an in-memory sqlite database migrated to the current
// schema and points the shared handle at it for the duration of the test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	db.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return gdb
}

// CreateUser inserts a user with TestPassword and a derived email.
func CreateUser(t *testing.T, username string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(TestPassword)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: hash,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

// CreateGroup inserts a group with the given slug.
func CreateGroup(t *testing.T, title, slug string) *models.Group {
	t.Helper()

	group := models.Group{Title: title, Slug: slug, Description: title + " posts"}
	require.NoError(t, db.DB.Create(&group).Error)
	return &group
}

// CreatePost inserts a post authored by user, optionally in a group.
func CreatePost(t *testing.T, user *models.User, text string, group *models.Group) *models.Post {
	t.Helper()

	post := models.Post{Text: text, UserID: user.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.DB.Create(&post).Error)
	return &post
}
