package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

const (
	// OrderEventsQueue receives every order lifecycle event.
	OrderEventsQueue = "order_events"
	// OrderCompletedType is the AMQP message type of OrderCompletedEvent.
	OrderCompletedType = "order.completed"
)

// OrderCompletedEvent is published once an order is in the ledger.
type OrderCompletedEvent struct {
	OrderID       string          `json:"order_id"`
	CustomerEmail string          `json:"customer_email"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// channel is the part of *amqp.Channel the client uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel channel
	logger  *logrus.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the order
// events queue.
func NewClient(cfg Config, logger *logrus.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c, err := newClient(ch, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func newClient(ch channel, logger *logrus.Logger) (*Client, error) {
	if err := declareQueue(ch); err != nil {
		ch.Close()
		return nil, err
	}
	logger.WithField("queue", OrderEventsQueue).Info("RabbitMQ client connected and queue declared")
	return &Client{channel: ch, logger: logger}, nil
}

func declareQueue(ch channel) error {
	_, err := ch.QueueDeclare(
		OrderEventsQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", OrderEventsQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
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

// PublishOrderCompleted publishes event to the order events queue as a
// persistent JSON message.
func (c *Client) PublishOrderCompleted(event OrderCompletedEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",               // exchange: default exchange
		OrderEventsQueue, // routing key: the queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         OrderCompletedType,
			MessageId:    event.OrderID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.WithField("order_id", event.OrderID).Debug("Published order completed event")
	return nil
}

// ConsumeOrderEvents delivers order completed events to handler until ctx
// is done or the delivery channel closes. Messages the handler fails on are
// requeued; messages that cannot be decoded are dropped.
func (c *Client) ConsumeOrderEvents(ctx context.Context, handler func(OrderCompletedEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}
	if err := declareQueue(c.channel); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		OrderEventsQueue, // queue
		"",               // consumer tag
		false,            // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.WithField("queue", OrderEventsQueue).Info("Waiting for order events")

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("Order events delivery channel closed")
					return
				}
				c.handle(msg, handler)
			}
		}
	}()
	return nil
}

func (c *Client) handle(msg amqp.Delivery, handler func(OrderCompletedEvent) error) {
	log := c.logger.WithField("delivery_tag", msg.DeliveryTag)

	var event OrderCompletedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.WithError(err).Error("Dropping undecodable order event")
		if err := msg.Nack(false, false); err != nil {
			log.WithError(err).Error("Error nacking message")
		}
		return
	}

	if err := handler(event); err != nil {
		log.WithError(err).Error("Error processing order event")
		if err := msg.Nack(false, true); err != nil {
			log.WithError(err).Error("Error nacking message")
		}
		return
	}
	if err := msg.Ack(false); err != nil {
		log.WithError(err).Error("Error acking message")
	}
}
