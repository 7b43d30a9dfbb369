package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/deposit/model"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	mock "github.com/msmkdenis/yap-poolledger/internal/mocks"
	pool "github.com/msmkdenis/yap-poolledger/internal/pool/model"
)

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type DepositServiceSuite struct {
	suite.Suite
	s          *DepositUseCase
	repository *mock.MockDepositRepository
	pool       *mock.MockPoolAllocator
	ledger     *mock.MockLedgerWriter
	ctrl       *gomock.Controller
	now        time.Time
}

func TestDepositServiceSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceSuite))
}

func (d *DepositServiceSuite) SetupTest() {
	logger, _ := zap.NewDevelopment()
	d.ctrl = gomock.NewController(d.T())
	d.repository = mock.NewMockDepositRepository(d.ctrl)
	d.pool = mock.NewMockPoolAllocator(d.ctrl)
	d.ledger = mock.NewMockLedgerWriter(d.ctrl)
	d.s = NewDepositService(d.repository, d.pool, d.ledger, passthroughTx{}, logger)
	d.now = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	d.s.now = func() time.Time { return d.now }
}

func pendingDeposit() *model.DepositRequest {
	return &model.DepositRequest{
		ID:            "deposit-1",
		UserID:        "user-1",
		Amount:        decimal.NewFromInt(300),
		Status:        model.StatusPending,
		LedgerEntryID: "entry-1",
	}
}

func (d *DepositServiceSuite) TestCreate() {
	d.pool.EXPECT().GetPoolHealth(gomock.Any()).Return(&pool.HealthReport{Status: pool.HealthHealthy}, nil)
	d.ledger.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry ledger.Entry) (*ledger.Entry, error) {
		assert.Equal(d.T(), ledger.TypeDeposit, entry.Type)
		assert.Equal(d.T(), "user-1", entry.UserID)
		assert.True(d.T(), decimal.NewFromInt(300).Equal(entry.Amount))
		entry.ID = "entry-1"
		entry.Status = ledger.StatusPending
		return &entry, nil
	})
	d.repository.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, deposit *model.DepositRequest) error {
		assert.Equal(d.T(), "entry-1", deposit.LedgerEntryID)
		assert.Equal(d.T(), model.StatusPending, deposit.Status)
		return nil
	})

	deposit, err := d.s.Create(context.Background(), "user-1", decimal.NewFromInt(300))
	require.NoError(d.T(), err)

	assert.NotEmpty(d.T(), deposit.ID)
	assert.Equal(d.T(), "entry-1", deposit.LedgerEntryID)
}

func (d *DepositServiceSuite) TestCreateWarningPoolStillAccepts() {
	d.pool.EXPECT().GetPoolHealth(gomock.Any()).Return(&pool.HealthReport{Status: pool.HealthWarning}, nil)
	d.ledger.EXPECT().Open(gomock.Any(), gomock.Any()).Return(&ledger.Entry{ID: "entry-1"}, nil)
	d.repository.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.s.Create(context.Background(), "user-1", decimal.NewFromInt(10))

	assert.NoError(d.T(), err)
}

func (d *DepositServiceSuite) TestCreateRefusedWhenPoolCritical() {
	d.pool.EXPECT().GetPoolHealth(gomock.Any()).Return(&pool.HealthReport{Status: pool.HealthCritical}, nil)
	d.ledger.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0)
	d.repository.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.s.Create(context.Background(), "user-1", decimal.NewFromInt(300))

	assert.ErrorIs(d.T(), err, apperrors.ErrPoolUnavailable)
}

func (d *DepositServiceSuite) TestCreateInvalidAmount() {
	d.pool.EXPECT().GetPoolHealth(gomock.Any()).Times(0)

	_, err := d.s.Create(context.Background(), "user-1", decimal.NewFromInt(-5))

	assert.ErrorIs(d.T(), err, apperrors.ErrInvalidAmount)
}

func (d *DepositServiceSuite) TestApprove() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(pendingDeposit(), nil)

	user := balance.NewBalance("balance-1", "user-1")
	user.Available = decimal.NewFromInt(50)
	gomock.InOrder(
		d.pool.EXPECT().AllocateToUser(gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (*balance.Balance, error) {
				require.NoError(d.T(), user.Credit(amount))
				return &user, nil
			}),
		d.ledger.EXPECT().Complete(gomock.Any(), "entry-1", map[string]any{"approved_by": "admin-1"}).Return(nil),
		d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, deposit model.DepositRequest) error {
			assert.Equal(d.T(), model.StatusApproved, deposit.Status)
			assert.Equal(d.T(), "admin-1", deposit.ApprovedBy)
			assert.Equal(d.T(), d.now, *deposit.ResolvedAt)
			return nil
		}),
	)

	deposit, err := d.s.Approve(context.Background(), "deposit-1", "admin-1")
	require.NoError(d.T(), err)

	assert.Equal(d.T(), model.StatusApproved, deposit.Status)
	assert.True(d.T(), decimal.NewFromInt(350).Equal(user.Available))
}

func (d *DepositServiceSuite) TestApproveWithoutPoolFunds() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(pendingDeposit(), nil)
	d.pool.EXPECT().AllocateToUser(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, apperrors.NewInsufficientBalanceError("pool", decimal.NewFromInt(300), decimal.NewFromInt(120)))
	d.ledger.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.s.Approve(context.Background(), "deposit-1", "admin-1")

	assert.ErrorIs(d.T(), err, apperrors.ErrInsufficientBalance)
}

func (d *DepositServiceSuite) TestApproveResolvedDeposit() {
	approved := pendingDeposit()
	approved.Status = model.StatusApproved
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(approved, nil)
	d.pool.EXPECT().AllocateToUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.s.Approve(context.Background(), "deposit-1", "admin-1")

	assert.ErrorIs(d.T(), err, apperrors.ErrInvalidState)
}

func (d *DepositServiceSuite) TestApproveMissingDeposit() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-404").Return(nil, apperrors.ErrDepositNotFound)

	_, err := d.s.Approve(context.Background(), "deposit-404", "admin-1")

	assert.ErrorIs(d.T(), err, apperrors.ErrDepositNotFound)
}

func (d *DepositServiceSuite) TestReject() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(pendingDeposit(), nil)
	d.ledger.EXPECT().Cancel(gomock.Any(), "entry-1", "transfer not received").Return(nil)
	d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	d.pool.EXPECT().AllocateToUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	deposit, err := d.s.Reject(context.Background(), "deposit-1", "transfer not received")
	require.NoError(d.T(), err)

	assert.Equal(d.T(), model.StatusRejected, deposit.Status)
	assert.Equal(d.T(), "transfer not received", deposit.RejectedReason)
}

func (d *DepositServiceSuite) TestCancelByOwner() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(pendingDeposit(), nil)
	d.ledger.EXPECT().Cancel(gomock.Any(), "entry-1", cancelledByUser).Return(nil)
	d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	deposit, err := d.s.Cancel(context.Background(), "deposit-1", "user-1")
	require.NoError(d.T(), err)

	assert.Equal(d.T(), model.StatusCancelled, deposit.Status)
}

func (d *DepositServiceSuite) TestCancelByAnotherUser() {
	d.repository.EXPECT().SelectByIDForUpdate(gomock.Any(), "deposit-1").Return(pendingDeposit(), nil)
	d.ledger.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.s.Cancel(context.Background(), "deposit-1", "user-2")

	assert.ErrorIs(d.T(), err, apperrors.ErrForbidden)
}

func (d *DepositServiceSuite) TestListByUser() {
	d.repository.EXPECT().SelectByUser(gomock.Any(), "user-1").Return([]model.DepositRequest{*pendingDeposit()}, nil)

	deposits, err := d.s.ListByUser(context.Background(), "user-1")
	require.NoError(d.T(), err)

	assert.Len(d.T(), deposits, 1)
}

func (d *DepositServiceSuite) TestListPendingFailure() {
	d.repository.EXPECT().SelectByStatus(gomock.Any(), model.StatusPending, pendingPageSize).Return(nil, errors.New("connection reset"))

	_, err := d.s.ListPending(context.Background())

	assert.Error(d.T(), err)
}
