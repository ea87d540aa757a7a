package database

import (
	"product-studio/internal/domain/products"
	"product-studio/internal/domain/users"
	"product-studio/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},
		&products.Product{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	log.Info().Msg("connected and migrated")
}
