package rabbitmq

import (
	"encoding/json"
	"time"

	"nutriplan/structs"
)

type publisher interface {
	Publish(queue string, body []byte) error
}

// EventPublisher publishes application events as JSON to one queue.
type EventPublisher struct {
	conn  publisher
	queue string
}

func NewEventPublisher(conn *Connection, queue string) *EventPublisher {
	return &EventPublisher{conn: conn, queue: queue}
}

func (e *EventPublisher) PublishEvent(event structs.EventModel) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.conn.Publish(e.queue, body)
}
