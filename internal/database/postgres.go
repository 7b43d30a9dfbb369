package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

type PostgresPool struct {
	DB     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresPool(connection string, logger *zap.Logger) (*PostgresPool, error) {
	dbPool, err := pgxpool.New(context.Background(), connection)
	if err != nil {
		return nil, apperrors.NewValueError("unable to create connection pool", utils.Caller(), err)
	}

	if err = dbPool.Ping(context.Background()); err != nil {
		dbPool.Close()
		return nil, apperrors.NewValueError("unable to ping database", utils.Caller(), err)
	}

	logger.Info("Successful connection", zap.String("database", dbPool.Config().ConnConfig.Database))

	return &PostgresPool{
		DB:     dbPool,
		logger: logger,
	}, nil
}

func (p *PostgresPool) Close() {
	p.DB.Close()
}
