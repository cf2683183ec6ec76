package services

import (
	"fmt"
	"testing"
	"time"

	"grove/internal/cache"
	"grove/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	))
	return db
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(100)
	require.NoError(t, err)
	return c
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createGroup(t *testing.T, db *gorm.DB, slug string) *models.Group {
	t.Helper()
	group := models.Group{
		Title:       slug,
		Slug:        slug,
		Description: "test group " + slug,
	}
	require.NoError(t, db.Create(&group).Error)
	return &group
}

// createPost inserts a post with an explicit timestamp so ordering tests are
// deterministic.
func createPost(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, text string, at time.Time) *models.Post {
	t.Helper()
	post := models.Post{
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: at,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

// createPosts inserts n posts a second apart, oldest first.
func createPosts(t *testing.T, db *gorm.DB, author *models.User, n int) []*models.Post {
	t.Helper()
	base := time.Now().Add(-time.Duration(n+1) * time.Second)
	posts := make([]*models.Post, n)
	for i := 0; i < n; i++ {
		posts[i] = createPost(t, db, author, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Second))
	}
	return posts
}
