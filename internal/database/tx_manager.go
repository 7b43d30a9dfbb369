package database

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// TxManager runs money-moving work in a single READ COMMITTED transaction.
// Row locks (SELECT ... FOR UPDATE) taken inside fn are held until commit.
// Nested calls join the outer transaction.
type TxManager struct {
	manager  *manager.Manager
	settings trm.Settings
}

func NewTxManager(postgresPool *PostgresPool) *TxManager {
	return &TxManager{
		manager: manager.Must(trmpgx.NewDefaultFactory(postgresPool.DB)),
		settings: trmpgx.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			trmpgx.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
		),
	}
}

func (t *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.manager.DoWithSettings(ctx, t.settings, fn)
}
