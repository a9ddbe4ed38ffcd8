package rabbitmq

import (
	"errors"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

var ErrNotConnected = errors.New("rabbitmq connection is not open")

// Connection is the publishing connection to the broker
type Connection struct {
	sync.Mutex
	domain  string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	closed  chan *amqp.Error
}

// NewConnection returns the new connection object, call Connect before use
func NewConnection(domain string, queues []string) *Connection {
	return &Connection{
		domain: domain,
		Queues: queues,
	}
}

func (c *Connection) Connect() error {
	c.Lock()
	defer c.Unlock()
	return c.connect()
}

func (c *Connection) connect() error {
	var err error
	c.Conn, err = amqp.Dial(c.domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection: %s", err.Error())
	}
	c.closed = c.Conn.NotifyClose(make(chan *amqp.Error, 1))
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

// Alive reports whether the connection has not been closed by the broker.
func (c *Connection) Alive() bool {
	c.Lock()
	defer c.Unlock()
	return c.alive()
}

func (c *Connection) alive() bool {
	if c.Conn == nil || c.Channel == nil {
		return false
	}
	select {
	case <-c.closed:
		return false
	default:
		return true
	}
}

// Publish sends body to queue as a persistent JSON message, reconnecting once
// when the previous connection was dropped.
func (c *Connection) Publish(queue string, body []byte) error {
	c.Lock()
	defer c.Unlock()

	if !c.alive() {
		if err := c.connect(); err != nil {
			return err
		}
	}
	if c.Channel == nil {
		return ErrNotConnected
	}
	return c.Channel.Publish(
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

func (c *Connection) Close() error {
	c.Lock()
	defer c.Unlock()
	if c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}
