// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/database"
	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewDB returns a migrated, private in-memory SQLite database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts an active user with the given role and password.
func CreateUser(t testing.TB, db *gorm.DB, email, password, role string) models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := models.User{FullName: "Test " + role, Email: email, Password: hashed, Role: role, Active: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}
