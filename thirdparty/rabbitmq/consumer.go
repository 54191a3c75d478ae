package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler reacts to one activity event.
type Handler func(ctx context.Context, event model.ActivityEvent) error

type ActivityConsumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

// NewActivityConsumer binds a private, auto-deleted queue to the exchange
// for the given routing keys.
func NewActivityConsumer(url, exchange string, keys ...string) (*ActivityConsumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareExchange(channel, exchange); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	q, err := channel.QueueDeclare(
		"",    // server named
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	for _, key := range keys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}

	return &ActivityConsumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
	}, nil
}

func (c *ActivityConsumer) Start(ctx context.Context, handler Handler) error {
	// one event at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				handleDelivery(ctx, msg, handler)
			}
		}
	}()

	return nil
}

// handleDelivery never requeues: events only trigger a refresh, and a
// later event triggers another one.
func handleDelivery(ctx context.Context, msg amqp091.Delivery, handler Handler) {
	var event model.ActivityEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[ActivityConsumer] failed to unmarshal message", zap.String("error", err.Error()))
		msg.Ack(false)
		return
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("[ActivityConsumer] handler failed",
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
			zap.String("error", err.Error()))
		msg.Nack(false, false)
		return
	}

	msg.Ack(false)
}

func (c *ActivityConsumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
