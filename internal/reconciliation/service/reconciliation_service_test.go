package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/alert"
	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balance "github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/config"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	ledger "github.com/msmkdenis/yap-poolledger/internal/ledger/model"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	mock "github.com/msmkdenis/yap-poolledger/internal/mocks"
	pool "github.com/msmkdenis/yap-poolledger/internal/pool/model"
	"github.com/msmkdenis/yap-poolledger/internal/reconciliation/model"
)

var reconciliationCfgMock = config.ReconciliationConfig{
	Epsilon:               decimal.RequireFromString("0.01"),
	CriticalAmount:        decimal.NewFromInt(1000),
	CriticalRatio:         decimal.RequireFromString("0.05"),
	SampleSize:            2,
	StaleReservationAfter: 30 * time.Minute,
	ItemsPerSecond:        1000,
}

type ReconciliationServiceSuite struct {
	suite.Suite
	s         *ReconciliationUseCase
	balances  *mock.MockBalanceReader
	directory *mock.MockBalanceDirectory
	ledger    *mock.MockLedgerTotals
	pool      *mock.MockPoolReader
	wallet    *mock.MockWalletReader
	alerter   *mock.MockAlerter
	ctrl      *gomock.Controller
	now       time.Time
}

func TestReconciliationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceSuite))
}

func (r *ReconciliationServiceSuite) SetupTest() {
	logger, _ := zap.NewDevelopment()
	r.ctrl = gomock.NewController(r.T())
	r.balances = mock.NewMockBalanceReader(r.ctrl)
	r.directory = mock.NewMockBalanceDirectory(r.ctrl)
	r.ledger = mock.NewMockLedgerTotals(r.ctrl)
	r.pool = mock.NewMockPoolReader(r.ctrl)
	r.wallet = mock.NewMockWalletReader(r.ctrl)
	r.alerter = mock.NewMockAlerter(r.ctrl)
	r.s = NewReconciliationService(r.balances, r.directory, r.ledger, r.pool, r.wallet, r.alerter,
		metrics.New(prometheus.NewRegistry()), reconciliationCfgMock, logger)
	r.now = time.Date(2026, 7, 1, 3, 0, 0, 0, time.UTC)
	r.s.now = func() time.Time { return r.now }
}

func userWith(userID string, available, reserved string) *balance.Balance {
	b := balance.NewBalance("balance-"+userID, userID)
	b.Available = decimal.RequireFromString(available)
	b.Reserved = decimal.RequireFromString(reserved)
	return &b
}

// +50 deposit, -20 sale, -10 payout leaves 20.
func historyTotals() []ledger.TypeTotal {
	return []ledger.TypeTotal{
		{Type: ledger.TypeDeposit, Count: 1, Amount: decimal.NewFromInt(50)},
		{Type: ledger.TypeSale, Count: 1, Amount: decimal.NewFromInt(20)},
		{Type: ledger.TypePayout, Count: 1, Amount: decimal.NewFromInt(10)},
	}
}

func (r *ReconciliationServiceSuite) TestReconcileBalance() {
	testCases := []struct {
		name               string
		available          string
		reserved           string
		expectedReconciled bool
		expectedDifference string
	}{
		{name: "matches history", available: "20", reserved: "0", expectedReconciled: true, expectedDifference: "0"},
		{name: "reserved still owned", available: "5", reserved: "15", expectedReconciled: true, expectedDifference: "0"},
		{name: "rounding absorbed", available: "20.005", reserved: "0", expectedReconciled: true, expectedDifference: "0.005"},
		{name: "missing funds", available: "12.5", reserved: "0", expectedReconciled: false, expectedDifference: "-7.5"},
		{name: "extra funds", available: "25", reserved: "0", expectedReconciled: false, expectedDifference: "5"},
	}

	for _, test := range testCases {
		r.Run(test.name, func() {
			r.SetupTest()
			r.balances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(userWith("user-1", test.available, test.reserved), nil)
			r.ledger.EXPECT().CompletedTotals(gomock.Any(), "user-1").Return(historyTotals(), nil)

			check, err := r.s.ReconcileBalance(context.Background(), "user-1")
			require.NoError(r.T(), err)

			assert.Equal(r.T(), test.expectedReconciled, check.IsReconciled)
			assert.True(r.T(), decimal.RequireFromString(test.expectedDifference).Equal(check.Difference),
				"difference %s", check.Difference)
			assert.True(r.T(), decimal.NewFromInt(20).Equal(check.Implied))
		})
	}
}

func (r *ReconciliationServiceSuite) TestReconcileBalanceUnknownUser() {
	r.balances.EXPECT().GetBalance(gomock.Any(), "ghost").Return(nil, apperrors.ErrBalanceNotFound)

	_, err := r.s.ReconcileBalance(context.Background(), "ghost")

	assert.ErrorIs(r.T(), err, apperrors.ErrBalanceNotFound)
}

func (r *ReconciliationServiceSuite) TestReconcilePool() {
	account := pool.NewPoolAccount("wallet-1")
	account.Total = decimal.NewFromInt(100000)
	account.Allocated = decimal.NewFromInt(50000)
	account.Recompute()
	r.pool.EXPECT().GetPoolStatus(gomock.Any()).Return(&account, nil)
	r.directory.EXPECT().SelectTotal(gomock.Any()).Return(decimal.NewFromInt(48500), int64(12), nil)

	discrepancy, err := r.s.ReconcilePool(context.Background())
	require.NoError(r.T(), err)

	assert.Equal(r.T(), model.ScopePool, discrepancy.Scope)
	assert.True(r.T(), decimal.NewFromInt(1500).Equal(discrepancy.Difference))
	assert.Equal(r.T(), model.SeverityCritical, discrepancy.Severity)
}

func (r *ReconciliationServiceSuite) TestReconcileGatewayUnavailable() {
	account := pool.NewPoolAccount("wallet-1")
	r.pool.EXPECT().GetPoolStatus(gomock.Any()).Return(&account, nil)
	r.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(nil, apperrors.ErrServiceUnavailable)

	_, err := r.s.ReconcileGateway(context.Background())

	assert.ErrorIs(r.T(), err, apperrors.ErrServiceUnavailable)
}

func (r *ReconciliationServiceSuite) TestDetectStuckReservations() {
	createdAt := r.now.Add(-2 * time.Hour)
	r.ledger.EXPECT().StalePending(gomock.Any(), 30*time.Minute, stuckLimit).Return([]ledger.Entry{
		{ID: "entry-1", UserID: "user-1", Type: ledger.TypeSale, Amount: decimal.NewFromInt(40), CreatedAt: createdAt},
		{ID: "entry-2", UserID: "user-2", Type: ledger.TypePayout, Amount: decimal.NewFromInt(75), CreatedAt: createdAt},
	}, nil)

	stuck, err := r.s.DetectStuckReservations(context.Background())
	require.NoError(r.T(), err)

	require.Len(r.T(), stuck, 2)
	assert.Equal(r.T(), "entry-1", stuck[0].EntryID)
	assert.Equal(r.T(), "SALE", stuck[0].Type)
	assert.Equal(r.T(), 2*time.Hour, stuck[0].Age)
	assert.Equal(r.T(), "entry-2", stuck[1].EntryID)
	assert.Equal(r.T(), "PAYOUT", stuck[1].Type)
}

func (r *ReconciliationServiceSuite) TestReconcileGatewayCountsUnsettledOutflow() {
	account := pool.NewPoolAccount("wallet-1")
	account.Total = decimal.NewFromInt(1000)
	account.Allocated = decimal.NewFromInt(200)
	account.Unsettled = decimal.NewFromInt(300)
	account.Recompute()
	r.pool.EXPECT().GetPoolStatus(gomock.Any()).Return(&account, nil)
	r.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(&gateway.WalletBalance{Available: decimal.NewFromInt(700)}, nil)

	discrepancy, err := r.s.ReconcileGateway(context.Background())
	require.NoError(r.T(), err)

	assert.True(r.T(), discrepancy.IsReconciled())
	assert.True(r.T(), discrepancy.Difference.IsZero())
}

// expectHealthyInfrastructure makes the pool, gateway and stuck checks pass.
func (r *ReconciliationServiceSuite) expectHealthyInfrastructure(owned int64) {
	account := pool.NewPoolAccount("wallet-1")
	account.Total = decimal.NewFromInt(10000)
	account.Allocated = decimal.NewFromInt(owned)
	account.Recompute()
	r.pool.EXPECT().GetPoolStatus(gomock.Any()).Return(&account, nil).Times(2)
	r.directory.EXPECT().SelectTotal(gomock.Any()).Return(decimal.NewFromInt(owned), int64(2), nil)
	r.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(&gateway.WalletBalance{Available: decimal.NewFromInt(10000)}, nil)
	r.ledger.EXPECT().StalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
}

func (r *ReconciliationServiceSuite) TestRunSampledClean() {
	r.directory.EXPECT().SelectRandomUserIDs(gomock.Any(), 2).Return([]string{"user-1", "user-2"}, nil)
	r.balances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(userWith("user-1", "20", "0"), nil)
	r.balances.EXPECT().GetBalance(gomock.Any(), "user-2").Return(userWith("user-2", "10", "10"), nil)
	r.ledger.EXPECT().CompletedTotals(gomock.Any(), gomock.Any()).Return(historyTotals(), nil).Times(2)
	r.expectHealthyInfrastructure(40)
	r.alerter.EXPECT().Raise(gomock.Any(), gomock.Any()).Times(0)

	report, err := r.s.RunSampled(context.Background())
	require.NoError(r.T(), err)

	assert.Equal(r.T(), model.ModeSampled, report.Mode)
	assert.Equal(r.T(), 2, report.UsersChecked)
	assert.Empty(r.T(), report.Discrepancies)
	assert.Equal(r.T(), model.SeverityNone, report.Severity())
}

func (r *ReconciliationServiceSuite) TestRunFullEscalatesCritical() {
	r.directory.EXPECT().SelectUserIDs(gomock.Any()).Return([]string{"user-1", "user-2", "user-3"}, nil)
	r.balances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(userWith("user-1", "20", "0"), nil)
	r.balances.EXPECT().GetBalance(gomock.Any(), "user-2").Return(userWith("user-2", "19", "0"), nil)
	r.balances.EXPECT().GetBalance(gomock.Any(), "user-3").Return(nil, errors.New("connection reset"))
	r.ledger.EXPECT().CompletedTotals(gomock.Any(), gomock.Any()).Return(historyTotals(), nil).Times(2)
	r.expectHealthyInfrastructure(39)

	var raised []alert.Alert
	r.alerter.EXPECT().Raise(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a alert.Alert) error {
		raised = append(raised, a)
		return nil
	})

	report, err := r.s.RunFull(context.Background())
	require.NoError(r.T(), err)

	assert.Equal(r.T(), 2, report.UsersChecked)
	assert.Len(r.T(), report.Errors, 1)
	require.Len(r.T(), report.Discrepancies, 1)
	assert.Equal(r.T(), "user-2", report.Discrepancies[0].Subject)
	assert.Equal(r.T(), model.SeverityCritical, report.Discrepancies[0].Severity)
	require.Len(r.T(), raised, 1)
	assert.Equal(r.T(), alert.SeverityCritical, raised[0].Severity)
	assert.Equal(r.T(), "-1", raised[0].Details["difference"])
}

func (r *ReconciliationServiceSuite) TestRunSkipsWhenAlreadyRunning() {
	release := make(chan struct{})
	started := make(chan struct{})
	r.directory.EXPECT().SelectRandomUserIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int) ([]string, error) {
			close(started)
			<-release
			return nil, nil
		})
	r.expectHealthyInfrastructure(0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := r.s.RunSampled(context.Background())
		assert.NoError(r.T(), err)
	}()

	<-started
	_, err := r.s.RunFull(context.Background())
	assert.ErrorIs(r.T(), err, apperrors.ErrReconciliationAlreadyInProgress)

	close(release)
	wg.Wait()
}
