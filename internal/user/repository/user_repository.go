package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	"github.com/msmkdenis/yap-poolledger/internal/user/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

//go:embed queries/insert_user.sql
var insertUser string

//go:embed queries/select_user_by_login.sql
var selectUserByLogin string

type PostgresUserRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresUserRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresUserRepository) Insert(ctx context.Context, user model.User) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertUser, user.ID, user.Login, user.Password, user.Role)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return apperrors.ErrLoginAlreadyExists
	}

	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresUserRepository) SelectByLogin(ctx context.Context, login string) (*model.User, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var user model.User
	err := conn.QueryRow(ctx, selectUserByLogin, login).Scan(&user.ID, &user.Login, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValueError("user not found", utils.Caller(), apperrors.ErrUserNotFound)
		}
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &user, nil
}
