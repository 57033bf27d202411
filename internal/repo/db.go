// Package repo owns process-wide handles to Postgres and Redis,
// initialized once at startup, then handed to internal/store.
package repo

import (
	"gridgame/internal/config"
	"gridgame/internal/model"
	"gridgame/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.GlobalConfig.Database.DSN
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := DB.AutoMigrate(&model.User{}, &model.Session{}, &model.Move{}); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}
}
