package store

import (
	"github.com/budgetwise/backend/configs"
	"github.com/budgetwise/backend/internal/logger"
	"github.com/budgetwise/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func NewDB() {
	dsn := configs.AppConfig.DB.DSN
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: false,
	}), &gorm.Config{
		// Needed so the unique-constraint race in GetOrCreateUser surfaces
		// as gorm.ErrDuplicatedKey instead of a driver-specific error.
		TranslateError: true,
	})
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	DB = db
	logger.Log.Info("connected to the database")
}

func DBMigrate() {
	DB.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Budget{}, &models.Savings{})
	logger.Log.Info("migrations loaded")
}
