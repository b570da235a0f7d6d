package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"novita/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.PostModel{},
		&models.CommentModel{},
		&models.PostLikeModel{},
		&models.TicketModel{},
		&models.TicketResponseModel{},
		&models.TicketAttachmentModel{},
	)
	require.NoError(t, err)

	return gdb
}
