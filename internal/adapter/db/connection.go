package db

import (
	"context"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskbook/internal/config"
)

const defaultParams = "parseTime=true"

// dataSourceName builds the MySQL DSN. parseTime is always on because task
// dates are scanned into time values.
func dataSourceName(conf *config.Config) (*mysql.Config, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		conf.DbUser, conf.DbPassword, net.JoinHostPort(conf.DbHost, conf.DbPort), conf.DbName, params)

	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql settings: %w", err)
	}
	mcfg.ParseTime = true
	return mcfg, nil
}

func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	mcfg, err := dataSourceName(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "mysql", mcfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	zap.L().Info("connected to mysql", zap.String("addr", mcfg.Addr), zap.String("database", mcfg.DBName))
	return db, nil
}

// OpenSnapshotRepository connects and makes sure the tables exist.
func OpenSnapshotRepository(ctx context.Context, conf *config.Config) (*SnapshotRepository, error) {
	db, err := ConnectDB(ctx, conf)
	if err != nil {
		return nil, err
	}
	repo := NewSnapshotRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.L().Warn("failed to close mysql connection", zap.Error(closeErr))
		}
		return nil, err
	}
	return repo, nil
}
