package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const tokenExpiryMargin = 30 * time.Second

type Credentials struct {
	ClientID     string
	ClientSecret string
	AccountID    string
}

// Client talks to the payment gateway that holds the pool wallet.
type Client struct {
	*resty.Client
	credentials Credentials
	limiter     *rate.Limiter
	logger      *zap.Logger
	now         func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewClient(endpoint string, credentials Credentials, rps int, timeout time.Duration, logger *zap.Logger) *Client {
	client := &Client{
		Client:      resty.New(),
		credentials: credentials,
		limiter:     rate.NewLimiter(rate.Limit(rps), rps),
		logger:      logger,
		now:         time.Now,
	}
	client.SetBaseURL(endpoint)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return client
}

// Authenticate returns a cached access token, fetching a new one when the
// cached token is missing or about to expire.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%s %w", utils.Caller(), err)
	}

	var token tokenResponse
	var failure errorResponse
	r, err := c.R().
		SetContext(ctx).
		SetBody(tokenRequest{ClientID: c.credentials.ClientID, ClientSecret: c.credentials.ClientSecret}).
		SetResult(&token).
		SetError(&failure).
		Post("/oauth/token")
	if err = c.check(r, err, failure); err != nil {
		return "", err
	}

	c.token = token.AccessToken
	c.expiresAt = c.now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	c.logger.Info("Gateway token refreshed", zap.Time("expires_at", c.expiresAt))

	return c.token, nil
}

func (c *Client) GetWalletBalance(ctx context.Context) (*WalletBalance, error) {
	var balance WalletBalance
	var failure errorResponse
	err := c.do(ctx, func(request *resty.Request) (*resty.Response, error) {
		return request.
			SetPathParam("account", c.credentials.AccountID).
			SetResult(&balance).
			SetError(&failure).
			Get("/v1/wallets/{account}/balance")
	}, &failure)
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

func (c *Client) Payout(ctx context.Context, payout PayoutRequest) (*PayoutResult, error) {
	var result PayoutResult
	var failure errorResponse
	err := c.do(ctx, func(request *resty.Request) (*resty.Response, error) {
		return request.
			SetHeader("Idempotency-Key", payout.Reference).
			SetBody(payout).
			SetResult(&result).
			SetError(&failure).
			Post("/v1/payouts")
	}, &failure)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Gateway payout accepted",
		zap.String("reference", payout.Reference), zap.String("gateway_reference", result.Reference))

	return &result, nil
}

func (c *Client) Purchase(ctx context.Context, purchase PurchaseRequest) (*PurchaseResult, error) {
	var result PurchaseResult
	var failure errorResponse
	err := c.do(ctx, func(request *resty.Request) (*resty.Response, error) {
		return request.
			SetHeader("Idempotency-Key", purchase.Reference).
			SetPathParam("product", purchase.Product).
			SetBody(purchase).
			SetResult(&result).
			SetError(&failure).
			Post("/v1/purchases/{product}")
	}, &failure)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, send func(request *resty.Request) (*resty.Response, error), failure *errorResponse) error {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return err
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	r, err := send(c.R().SetContext(ctx).SetAuthToken(token))
	if r != nil && r.StatusCode() == http.StatusUnauthorized {
		c.dropToken()
	}

	return c.check(r, err, *failure)
}

func (c *Client) dropToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) check(r *resty.Response, err error, failure errorResponse) error {
	if err != nil {
		c.logger.Error("Gateway request failed", zap.Error(err))
		return fmt.Errorf("%w: %s", apperrors.ErrServiceUnavailable, err.Error())
	}

	switch code := r.StatusCode(); {
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		c.logger.Warn("Gateway unavailable", zap.Int("status", code), zap.String("path", r.Request.URL))
		return fmt.Errorf("%w: gateway responded %d", apperrors.ErrServiceUnavailable, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		c.logger.Error("Gateway authentication failed", zap.Int("status", code))
		return apperrors.ErrGatewayAuthenticationFailed
	case code >= http.StatusBadRequest:
		c.logger.Warn("Gateway rejected request", zap.Int("status", code), zap.String("message", failure.Message))
		return apperrors.NewValueError("gateway rejected request: "+failure.Message, utils.Caller(), fmt.Errorf("status %d", code))
	}

	return nil
}
