package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type ackRecorder struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *ackRecorder) Ack(uint64, bool) error {
	a.acked = true
	return nil
}

func (a *ackRecorder) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func (a *ackRecorder) Reject(_ uint64, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}

func TestHandleDelivery(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantCalled bool
		wantAck    bool
	}{
		{
			name:       "handled event is acked",
			body:       `{"id":"e1","type":"cart.changed","user_id":"u1"}`,
			wantCalled: true,
			wantAck:    true,
		},
		{
			name:    "malformed body is dropped",
			body:    `{not json`,
			wantAck: true,
		},
		{
			name:       "handler failure is nacked without requeue",
			body:       `{"id":"e2","type":"cart.changed"}`,
			handlerErr: errors.New("backend down"),
			wantCalled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &ackRecorder{}
			called := false
			handler := func(_ context.Context, event model.ActivityEvent) error {
				called = true
				assert.Equal(t, "cart.changed", event.Type)
				return tt.handlerErr
			}

			handleDelivery(context.Background(), amqp091.Delivery{
				Acknowledger: rec,
				DeliveryTag:  1,
				Body:         []byte(tt.body),
			}, handler)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAck, rec.acked)
			assert.Equal(t, !tt.wantAck, rec.nacked)
			assert.False(t, rec.requeue)
		})
	}
}
