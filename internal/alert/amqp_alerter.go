package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

type AMQPAlerter struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	logger     *zap.Logger
	mu         sync.Mutex
}

// NewAMQPAlerter dials the broker and declares a durable direct exchange.
// Alerts are routed by severity.
func NewAMQPAlerter(url string, exchange string, logger *zap.Logger) (*AMQPAlerter, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, apperrors.NewValueError("unable to connect to broker", utils.Caller(), err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, apperrors.NewValueError("unable to open channel", utils.Caller(), err)
	}

	err = ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, apperrors.NewValueError("unable to declare exchange", utils.Caller(), err)
	}

	logger.Info("Alert exchange declared", zap.String("exchange", exchange))

	return &AMQPAlerter{
		connection: conn,
		channel:    ch,
		exchange:   exchange,
		logger:     logger,
	}, nil
}

func (a *AMQPAlerter) Raise(ctx context.Context, alert Alert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.channel.PublishWithContext(ctx, a.exchange, string(alert.Severity), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    alert.RaisedAt,
		Type:         alert.Source,
		Body:         body,
	})
	if err != nil {
		return apperrors.NewValueError("unable to publish alert", utils.Caller(), err)
	}

	return nil
}

func (a *AMQPAlerter) Close() {
	if err := a.channel.Close(); err != nil {
		a.logger.Error("Unable to close channel", zap.Error(err))
	}
	if err := a.connection.Close(); err != nil {
		a.logger.Error("Unable to close connection", zap.Error(err))
	}
}
