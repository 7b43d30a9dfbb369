package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/user/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

// UserRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_user_repository.go -package=mock github.com/msmkdenis/yap-poolledger/internal/user/service UserRepository
type UserRepository interface {
	Insert(ctx context.Context, u model.User) error
	SelectByLogin(ctx context.Context, login string) (*model.User, error)
}

// BalanceInitializer mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_initializer.go -package=mock github.com/msmkdenis/yap-poolledger/internal/user/service BalanceInitializer
type BalanceInitializer interface {
	InitializeBalance(ctx context.Context, userID string) (*balance.Balance, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserUseCase struct {
	repository UserRepository
	balances   BalanceInitializer
	trManager  TransactionManager
	logger     *zap.Logger
}

func NewUserService(repository UserRepository, balances BalanceInitializer, trManager TransactionManager, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		repository: repository,
		balances:   balances,
		trManager:  trManager,
		logger:     logger,
	}
}

// Register creates a seller together with an empty balance.
func (u *UserUseCase) Register(ctx context.Context, login, password string) (*model.User, error) {
	user, err := newUser(login, password, utils.RoleSeller)
	if err != nil {
		return nil, err
	}

	err = u.trManager.Do(ctx, func(ctx context.Context) error {
		if err := u.repository.Insert(ctx, user); err != nil {
			return err
		}
		_, err := u.balances.InitializeBalance(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	u.logger.Info("Seller registered", zap.String("user_id", user.ID), zap.String("login", login))

	return &user, nil
}

func (u *UserUseCase) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := u.repository.SelectByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if errPass := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); errPass != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}

// EnsureAdmin creates the operator account on first start. An existing login
// is left untouched.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return nil
	}

	admin, err := newUser(login, password, utils.RoleAdmin)
	if err != nil {
		return err
	}

	err = u.repository.Insert(ctx, admin)
	if errors.Is(err, apperrors.ErrLoginAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	u.logger.Info("Admin account created", zap.String("login", login))

	return nil
}

func newUser(login, password, role string) (model.User, error) {
	passHash, errHash := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errHash != nil {
		return model.User{}, apperrors.NewValueError("unable to hash password", utils.Caller(), errHash)
	}

	return model.User{
		ID:       uuid.New().String(),
		Login:    login,
		Password: passHash,
		Role:     role,
	}, nil
}
