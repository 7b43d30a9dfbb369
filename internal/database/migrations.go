package database

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Migrations struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

func NewMigrations(connection string, logger *zap.Logger) (*Migrations, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, apperrors.NewValueError("unable to open migrations", utils.Caller(), err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, connection)
	if err != nil {
		return nil, apperrors.NewValueError("unable to create migrations", utils.Caller(), err)
	}

	return &Migrations{
		migrate: m,
		logger:  logger,
	}, nil
}

func (m *Migrations) MigrateUp() error {
	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Migrations: no change")
		return nil
	}
	if err != nil {
		return apperrors.NewValueError("unable to apply migrations", utils.Caller(), err)
	}

	m.logger.Info("Migrations applied")
	return nil
}
