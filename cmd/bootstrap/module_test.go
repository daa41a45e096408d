//go:build unit

package bootstrap_test

import (
	"context"
	"testing"

	"facility-booking/cmd/bootstrap"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModule_GraphIsCompleteForEveryDriver(t *testing.T) {
	for _, driver := range []string{config.StorageDriverPostgres, config.StorageDriverMemory} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.Storage.Driver = driver

			err := fx.ValidateApp(
				bootstrap.Module(cfg),
				fx.Provide(func() *gin.Engine { return gin.New() }),
			)
			assert.NoError(t, err)
		})
	}
}

func TestModule_MemoryDriverStartsWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Storage.Driver = config.StorageDriverMemory

	var (
		engine *gin.Engine
		views  queries.DirectoryQueries
	)
	app := fx.New(
		bootstrap.Module(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&engine, &views),
		fx.NopLogger,
	)
	require.NoError(t, app.Start(context.Background()))
	defer func() { require.NoError(t, app.Stop(context.Background())) }()

	locs, err := views.ListLocations(context.Background(), queries.LocationFilter{})
	require.NoError(t, err)
	assert.Empty(t, locs)
	assert.NotEmpty(t, engine.Routes())
}
