package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db *gorm.DB
}

type txKey struct{}

// Models: все таблицы в порядке миграции
func Models() []any {
	return []any{
		&ds.User{},
		&ds.FeeTier{},
		&ds.ServiceMaster{},
		&ds.Specialist{},
		&ds.ServiceOffering{},
	}
}

func New(dsn string) (*Repository, error) {
	return Open(postgres.Open(dsn))
}

// Open подключает gorm к произвольному диалекту (в тестах sqlite)
func Open(dialector gorm.Dialector) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

// Migrate: автоматическая миграция всех таблиц
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// DB отдаёт соединение для служебных команд (migrate, seed)
func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithinTx выполняет fn в одной транзакции. Транзакция передаётся через ctx,
// поэтому все методы репозитория внутри fn работают в ней.
// Вложенный вызов переиспользует внешнюю транзакцию
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
