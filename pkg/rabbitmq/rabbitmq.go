package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"tokoadmin/internal/models"

	zlog "github.com/rs/zerolog/log"
	amqp "github.com/streadway/amqp"
)

// CatalogQueue receives one message per catalog mutation.
const CatalogQueue = "catalog_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
	// Queue defaults to CatalogQueue.
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = CatalogQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declare(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	zlog.Info().Str("queue", queue).Msg("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func declare(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ connection and channel.
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
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Encode marshals a change event into a persistent JSON publishing.
func Encode(event models.ChangeEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal catalog event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         string(event.Kind) + "." + string(event.Action),
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
	}, nil
}

// Decode reads a change event from a delivery body.
func Decode(body []byte) (models.ChangeEvent, error) {
	var event models.ChangeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal catalog event: %w", err)
	}
	if event.StoreID == "" || event.Kind == "" {
		return event, fmt.Errorf("catalog event is missing store or kind")
	}
	return event, nil
}

// PublishCatalogChange publishes event to the catalog queue.
func (c *Client) PublishCatalogChange(ctx context.Context, event models.ChangeEvent) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	msg, err := Encode(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		msg)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	zlog.Debug().Str("type", msg.Type).Str("store_id", event.StoreID).Msg("sent catalog event")
	return nil
}

// ConsumeCatalogEvents delivers catalog events to handler until ctx is done.
// Malformed messages are dropped; handler errors requeue the message.
func (c *Client) ConsumeCatalogEvents(ctx context.Context, handler func(models.ChangeEvent) error) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
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
				handleDelivery(msg, handler)
			}
		}
	}()

	return nil
}

func handleDelivery(msg amqp.Delivery, handler func(models.ChangeEvent) error) {
	event, err := Decode(msg.Body)
	if err != nil {
		zlog.Warn().Err(err).Uint64("tag", msg.DeliveryTag).Msg("dropping malformed catalog event")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			zlog.Error().Err(nackErr).Uint64("tag", msg.DeliveryTag).Msg("failed to nack message")
		}
		return
	}
	if err := handler(event); err != nil {
		zlog.Error().Err(err).Uint64("tag", msg.DeliveryTag).Msg("failed to process catalog event")
		if nackErr := msg.Nack(false, true); nackErr != nil {
			zlog.Error().Err(nackErr).Uint64("tag", msg.DeliveryTag).Msg("failed to nack message")
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		zlog.Error().Err(ackErr).Uint64("tag", msg.DeliveryTag).Msg("failed to ack message")
	}
}
