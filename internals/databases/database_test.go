package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assignment_backend/internals/configs"
)

func TestConnect_MemoryDriver(t *testing.T) {
	t.Parallel()

	h, err := Connect(context.Background(), configs.Config{DBDriver: configs.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, configs.DriverMemory, h.Driver)
	assert.Nil(t, h.Gorm)
	assert.Nil(t, h.Mongo)
	assert.NoError(t, h.Ping(context.Background()))
	assert.NoError(t, h.Migrate(struct{}{}))
	assert.NoError(t, h.Close(context.Background()))
}

func TestHandle_PingAndCloseGorm(t *testing.T) {
	t.Parallel()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	h := &Handle{Driver: configs.DriverPostgres, Gorm: db}
	mock.ExpectPing()
	mock.ExpectClose()

	require.NoError(t, h.Ping(context.Background()))
	require.NoError(t, h.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandle_NilPing(t *testing.T) {
	t.Parallel()

	var h *Handle
	assert.Error(t, h.Ping(context.Background()))
	assert.NoError(t, h.Close(context.Background()))
}
