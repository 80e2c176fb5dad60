package main

import (
	"marketplace/internal/app/dsn"
	"marketplace/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ограничение, которое AutoMigrate описать не умеет: диапазоны уровней комиссии не пересекаются
const (
	createGistExtension = `CREATE EXTENSION IF NOT EXISTS btree_gist`
	dropRangeConstraint = `ALTER TABLE fee_tiers DROP CONSTRAINT IF EXISTS fee_tiers_no_overlap`
	addRangeConstraint  = `ALTER TABLE fee_tiers ADD CONSTRAINT fee_tiers_no_overlap
		EXCLUDE USING gist (int4range(min_value, max_value, '[]') WITH &&)`
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	logrus.Info("Connected to database successfully")

	if err := repo.Migrate(); err != nil {
		logrus.Fatal(err)
	}

	db := repo.DB()
	for _, stmt := range []string{createGistExtension, dropRangeConstraint, addRangeConstraint} {
		if err := db.Exec(stmt).Error; err != nil {
			logrus.Fatalf("Failed to apply fee tier constraint: %v", err)
		}
	}

	logrus.Info("Database migration completed successfully")
}
