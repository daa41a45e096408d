package cli

import (
	"context"

	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func openDatabase(ctx context.Context) (*pgxpool.Pool, func(), error) {
	var dbCfg config.DBConfig
	if err := config.LoadSection(&dbCfg); err != nil {
		return nil, nil, err
	}
	return db.Connect(ctx, dbCfg)
}
