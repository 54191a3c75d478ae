package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher is what the application services emit activity through.
type Publisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

// Channel is the subset of *amqp091.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type ActivityPublisher struct {
	conn     *amqp091.Connection
	channel  Channel
	exchange string
	source   string
}

// NewActivityPublisher dials the broker and declares the topic exchange.
// source identifies this client instance so it can skip its own events.
func NewActivityPublisher(url, exchange, source string) (*ActivityPublisher, error) {
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

	p := NewActivityPublisherWithChannel(channel, exchange, source)
	p.conn = conn
	return p, nil
}

// NewActivityPublisherWithChannel publishes on an already prepared channel.
func NewActivityPublisherWithChannel(channel Channel, exchange, source string) *ActivityPublisher {
	return &ActivityPublisher{channel: channel, exchange: exchange, source: source}
}

func declareExchange(channel *amqp091.Channel, exchange string) error {
	return channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
}

func (p *ActivityPublisher) Publish(ctx context.Context, event model.ActivityEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if event.Source == "" {
		event.Source = p.source
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID,
			Type:        event.Type,
			Timestamp:   event.OccurredAt,
			Body:        body,
		},
	)
}

func (p *ActivityPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
