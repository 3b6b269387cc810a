package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"assignment_backend/internals/configs"
)

// Handle is the store collaborator chosen by DB_DRIVER. Exactly one of
// Gorm/Mongo is set for the postgres/mongo drivers; memory sets neither.
type Handle struct {
	Driver string
	Gorm   *gorm.DB
	Mongo  *mongo.Database

	mongoClient *mongo.Client
}

func Connect(ctx context.Context, cfg configs.Config) (*Handle, error) {
	switch cfg.DBDriver {
	case configs.DriverMemory:
		log.Warn().Msg("⚠️ DB_DRIVER=memory, data lives only in this process")
		return &Handle{Driver: configs.DriverMemory}, nil
	case configs.DriverMongo:
		client, db, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: configs.DriverMongo, Mongo: db, mongoClient: client}, nil
	default:
		db, err := ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		TunePool(db)
		return &Handle{Driver: configs.DriverPostgres, Gorm: db}, nil
	}
}

func ConnectPostgres(cfg configs.Config) (*gorm.DB, error) {
	log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("🔌 connecting to PostgreSQL")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=assignment_backend&options=-c%%20statement_timeout%%3D3000",
		url.QueryEscape(cfg.DBUser),
		url.QueryEscape(cfg.DBPassword),
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("✅ PostgreSQL connected")
	return db, nil
}

func ConnectMongo(ctx context.Context, cfg configs.Config) (*mongo.Client, *mongo.Database, error) {
	uri := cfg.MongoURI
	if uri == "" {
		uri = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword), cfg.DBHost)
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info().Str("db", cfg.MongoDatabase).Msg("✅ Pinged your deployment. MongoDB connected")
	return client, client.Database(cfg.MongoDatabase), nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("pool tune err")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/extends tables for the given models. No-op outside postgres.
func (h *Handle) Migrate(models ...any) error {
	if h.Gorm == nil {
		return nil
	}
	return h.Gorm.AutoMigrate(models...)
}

func (h *Handle) Ping(ctx context.Context) error {
	switch {
	case h == nil:
		return errors.New("database: nil handle")
	case h.Gorm != nil:
		sqlDB, err := h.Gorm.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	case h.mongoClient != nil:
		return h.mongoClient.Ping(ctx, nil)
	default:
		return nil
	}
}

func (h *Handle) Close(ctx context.Context) error {
	switch {
	case h == nil:
		return nil
	case h.Gorm != nil:
		sqlDB, err := h.Gorm.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	case h.mongoClient != nil:
		return h.mongoClient.Disconnect(ctx)
	default:
		return nil
	}
}
