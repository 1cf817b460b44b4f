package database

import (
	"context"
	"fmt"
	"time"

	"prepcourse/config"
	"prepcourse/services"
	"prepcourse/store"
	"prepcourse/store/gormstore"
	"prepcourse/store/mongostore"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

// DbInstance holds the store and the services bound to it
type DbInstance struct {
	Store    store.Store
	Services *services.Service
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured backend, runs migrations and publishes it
// through Database.
func ConnectDb() {
	cfg := config.AppConfig
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", "driver", cfg.DBDriver, "err", err)
	}
	log.Info("Connected to database", "driver", cfg.DBDriver)

	if err := st.Migrate(ctx); err != nil {
		log.Fatal("Migration failed", "err", err)
	}

	Use(st)
}

// Use publishes st as the global store.
func Use(st store.Store) {
	Database = DbInstance{
		Store:    st,
		Services: services.NewFromConfig(st, config.AppConfig),
	}
}

// Open builds the store selected by cfg.DBDriver.
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	opts := gormstore.Options{MaxOpenConns: cfg.DBMaxOpenConns, MaxIdleConns: cfg.DBMaxIdleConns}

	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.DBURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
			)
		}
		return gormstore.Open(postgres.Open(dsn), opts)

	case "mysql":
		dsn := cfg.DBURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return gormstore.Open(mysql.Open(dsn), opts)

	case "sqlite":
		path := cfg.DBURL
		if path == "" {
			path = cfg.DBName + ".db"
		}
		return gormstore.Open(sqlite.Open(path), opts)

	case "mongo":
		uri := cfg.DBURL
		if uri == "" {
			uri = fmt.Sprintf("mongodb://%s:%s", cfg.DBHost, cfg.DBPort)
		}
		return mongostore.Open(ctx, uri, cfg.DBName, mongostore.Options{
			MaxPoolSize: uint64(max(cfg.DBMaxOpenConns, 0)),
			MinPoolSize: uint64(max(cfg.DBMaxIdleConns, 0)),
		})
	}
	return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
