package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailPublisher publishes email events to RabbitMQ
type EmailPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

func NewEmailPublisher(conn *RabbitMQConnection) *EmailPublisher {
	return &EmailPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// PublishEmail publishes an email event to the email_events queue
func (p *EmailPublisher) PublishEmail(ctx context.Context, event EmailEvent) error {
	_, err := p.conn.Channel.QueueDeclare(
		EmailQueue, // queue name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		amqp.Table{"x-dead-letter-exchange": "", "x-dead-letter-routing-key": EmailDLQ},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal email event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",         // exchange
		EmailQueue, // routing key (queue name)
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish email event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Email event published",
		"queue", EmailQueue,
		"to", event.To,
		"template", event.Template,
	)

	return nil
}
