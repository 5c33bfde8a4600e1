// Package queue carries activity events over RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// ClientConfig holds configuration for the RabbitMQ client.
type ClientConfig struct {
	URL string
	// Exchange is a durable topic exchange; events are routed by their type.
	Exchange string
	// QueueName is the worker queue bound to the exchange.
	QueueName string
	// BindingKeys select the event types delivered to QueueName.
	BindingKeys []string
	Prefetch    int
	// HandlerTimeout bounds a single handler call. Handler contexts are not
	// cancelled by consumer shutdown, only by this timeout.
	HandlerTimeout time.Duration
}

// DefaultClientConfig returns a ClientConfig that delivers every activity
// event to one worker queue.
func DefaultClientConfig(url string) ClientConfig {
	return ClientConfig{
		URL:            url,
		Exchange:       "mediahub.activity",
		QueueName:      "activity_events",
		BindingKeys:    []string{"subscription.*", "video.*"},
		Prefetch:       16,
		HandlerTimeout: 10 * time.Second,
	}
}

// amqpConnection abstracts amqp.Connection for testability.
type amqpConnection interface {
	Channel() (*amqp.Channel, error)
	Close() error
	IsClosed() bool
}

// amqpChannel abstracts amqp.Channel for testability.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Close() error
}

// Client implements repository.MessageQueue using RabbitMQ.
type Client struct {
	conn    amqpConnection
	channel amqpChannel
	config  ClientConfig
}

var _ repository.MessageQueue = (*Client)(nil)

// NewClient connects and declares the exchange, queue and bindings so
// misconfiguration fails at startup.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := setupTopology(ch, cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Client{conn: conn, channel: ch, config: cfg}, nil
}

// setupTopology is idempotent; every declaration matches on redeclare.
func setupTopology(ch amqpChannel, cfg ClientConfig) error {
	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}
	if _, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}
	for _, key := range cfg.BindingKeys {
		if err := ch.QueueBind(cfg.QueueName, key, cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind %s to %s: %w", cfg.QueueName, key, err)
		}
	}
	return nil
}

// Publish routes an event through the exchange by its type.
func (c *Client) Publish(ctx context.Context, event repository.ActivityEvent) error {
	return c.publish(ctx, c.config.Exchange, string(event.Type), event)
}

// retry sends an event straight back to the worker queue through the default
// exchange, so other queues bound to the topic do not see it twice.
func (c *Client) retry(ctx context.Context, event repository.ActivityEvent) error {
	return c.publish(ctx, "", c.config.QueueName, event)
}

func (c *Client) publish(ctx context.Context, exchange, key string, event repository.ActivityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.ID.String(),
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// ConsumeEvents delivers events from the worker queue to handler until ctx is
// cancelled or the delivery channel closes.
//
//   - handler success: ack
//   - undecodable body: nack without requeue
//   - handler failure: republish with RetryCount+1, then ack; nack if the
//     republish fails
//
// The handler decides when an event has been retried too often; returning nil
// for an exhausted event acks and drops it.
func (c *Client) ConsumeEvents(ctx context.Context, handler repository.EventHandler) error {
	msgs, err := c.channel.Consume(c.config.QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed unexpectedly")
			}
			c.deliver(ctx, msg, handler)
		}
	}
}

func (c *Client) deliver(ctx context.Context, msg amqp.Delivery, handler repository.EventHandler) {
	var event repository.ActivityEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		slog.Warn("dropping malformed event", "message_id", msg.MessageId, "error", err)
		_ = msg.Nack(false, false)
		return
	}

	hctx, cancel := c.handlerContext(ctx)
	defer cancel()

	if err := handler(hctx, event); err == nil {
		_ = msg.Ack(false)
		return
	}

	event.RetryCount++
	if err := c.retry(hctx, event); err != nil {
		slog.Error("failed to republish event for retry",
			"event_id", event.ID,
			"event_type", event.Type,
			"retry_count", event.RetryCount,
			"error", err,
		)
		_ = msg.Nack(false, false)
		return
	}
	_ = msg.Ack(false)
}

func (c *Client) handlerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if c.config.HandlerTimeout <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, c.config.HandlerTimeout)
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}
