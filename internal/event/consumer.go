package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailSender delivers one email event. Implemented by the SMTP service; the
// interface keeps the consumer testable without a mail server.
type EmailSender interface {
	Send(ev EmailEvent) error
}

type QueueConsumer struct {
	conn            *RabbitMQConnection
	emailSender     EmailSender
	queueName       string
	deadLetterQueue string
}

type ConsumerConfig struct {
	QueueName       string
	DeadLetterQueue string
	PrefetchCount   int
}

func NewQueueConsumer(conn *RabbitMQConnection, cfg *ConsumerConfig, sender EmailSender) (*QueueConsumer, error) {
	// Set QoS for controlled processing
	err := conn.Channel.Qos(
		cfg.PrefetchCount, // prefetch count
		0,                 // prefetch size
		false,             // global
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set QoS: %v", err)
	}

	_, err = conn.Channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-dead-letter-exchange": "", "x-dead-letter-routing-key": cfg.DeadLetterQueue},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %v", err)
	}

	// Declare dead letter queue
	_, err = conn.Channel.QueueDeclare(
		cfg.DeadLetterQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ: %v", err)
	}

	return &QueueConsumer{
		conn:            conn,
		emailSender:     sender,
		queueName:       cfg.QueueName,
		deadLetterQueue: cfg.DeadLetterQueue,
	}, nil
}

func (q *QueueConsumer) StartConsuming(ctx context.Context) error {
	msgs, err := q.conn.Channel.Consume(
		q.queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %v", err)
	}

	for {
		select {
		case msg := <-msgs:
			if err := q.processMessage(msg); err != nil {
				log.Printf("Error processing message: %v", err)

				// Check retry count
				retryCount := 0
				if val, ok := msg.Headers["x-retry-count"].(int32); ok {
					retryCount = int(val)
				}

				if retryCount < 3 {
					// Requeue with exponential backoff
					q.requeueMessage(msg, retryCount+1)
					msg.Ack(false)
				} else {
					// Send to DLQ
					msg.Nack(false, false)
					log.Printf("Message sent to DLQ after %d retries", retryCount)
				}
			} else {
				msg.Ack(false)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (q *QueueConsumer) processMessage(msg amqp.Delivery) error {
	var ev EmailEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal email event: %v", err)
	}
	if ev.To == "" {
		return fmt.Errorf("email event missing recipient")
	}
	return q.emailSender.Send(ev)
}

func (q *QueueConsumer) requeueMessage(msg amqp.Delivery, retryCount int) error {
	headers := msg.Headers
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retry-count"] = int32(retryCount)

	delay := time.Duration(retryCount*retryCount) * time.Second

	return q.conn.Channel.Publish(
		"",          // exchange
		q.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg.Body,
			Headers:     headers,
			Expiration:  fmt.Sprintf("%d", delay.Milliseconds()),
		},
	)
}
